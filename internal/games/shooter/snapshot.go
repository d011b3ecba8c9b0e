package shooter

// Snapshot is a flat, copyable view of the world after a tick.
type Snapshot struct {
	Tick         uint64
	Elapsed      float64
	PlayerX      float64
	PlayerY      float64
	PlayerZ      float64
	PlayerHealth float64
	Score        int
	Bullets      int
	Enemies      int
	Phase        Phase
}

// Snapshot returns the current state of the world.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:         w.Tick,
		Elapsed:      w.Elapsed,
		PlayerX:      w.Player.Position.X,
		PlayerY:      w.Player.Position.Y,
		PlayerZ:      w.Player.Position.Z,
		PlayerHealth: w.Player.Health,
		Score:        w.Player.Score,
		Bullets:      len(w.Player.Bullets),
		Enemies:      len(w.Enemies),
		Phase:        w.Phase(),
	}
}
