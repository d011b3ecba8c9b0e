package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (TUI only)
	ScreenH  int   // Screen height in characters (TUI only)
	TickRate int   // Real-time ticks per second for the TUI front end
	Seed     int64 // RNG seed for enemy spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The line-mode console ignores TickRate: it advances one tick per command.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
