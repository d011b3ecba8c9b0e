package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shooter3d/internal/core"
)

// Glyphs used on the radar.
const (
	PlayerGlyph = 'P'
	BulletGlyph = 'B'
	EnemyGlyph  = 'E'
)

const sidebarWidth = 26

// Render draws the HUD, a top-down (X across, Z up) radar of the world box
// and, when the session is over, the restart prompt.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	p := &w.Player

	dst.DrawText(1, 0, fmt.Sprintf("3D SHOOTER  Score: %d  Health: %s  Tick: %d", p.Score, num(p.Health), w.Tick))

	radarW := dst.Width()
	if dst.Width() >= sidebarWidth*2 {
		radarW = dst.Width() - sidebarWidth
	}
	radar := core.NewRect(0, 1, radarW, dst.Height()-1)
	dst.DrawBox(radar)
	g.drawRadar(dst, radar.Inner())

	if radarW < dst.Width() {
		cfg := w.Config()
		side := []string{
			"Player " + point(p.Position),
			fmt.Sprintf("Velocity Y %s", num(p.Velocity.Y)),
			fmt.Sprintf("Bullets %d/%d", len(p.Bullets), cfg.Limits.MaxBullets),
			fmt.Sprintf("Enemies %d/%d", len(w.Enemies), cfg.Limits.MaxEnemies),
			fmt.Sprintf("Next spawn %ss", num(math.Max(cfg.Spawn.Interval-w.Elapsed, 0))),
		}
		for i, line := range side {
			dst.DrawText(radarW+1, 2+i, line)
		}
	}

	switch {
	case w.Phase() == PhaseGameOver:
		drawMessage(dst, GameOverLines(p.Score))
	case g.paused:
		drawMessage(dst, []string{"PAUSED", "Press P to resume"})
	}
}

// drawRadar plots enemies, bullets and the player projected onto the X/Z plane.
// Bodies outside the box horizontally are not drawn.
func (g *Game) drawRadar(dst *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	hx, _, hz := g.world.Config().HalfExtent()

	plot := func(pos core.Vector3, r rune) {
		if pos.X < -hx || pos.X > hx || pos.Z < -hz || pos.Z > hz {
			return
		}
		col := int(math.Round((pos.X + hx) / (2 * hx) * float64(area.W-1)))
		row := int(math.Round((hz - pos.Z) / (2 * hz) * float64(area.H-1)))
		dst.Set(area.X+col, area.Y+row, r)
	}

	for _, e := range g.world.Enemies {
		plot(e.Position, EnemyGlyph)
	}
	for _, b := range g.world.Player.Bullets {
		plot(b.Position, BulletGlyph)
	}
	plot(g.world.Player.Position, PlayerGlyph)
}

// drawMessage draws lines inside a centered box.
func drawMessage(dst *core.Screen, lines []string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len(l))/2, box.Y+1+i, l)
	}
}
