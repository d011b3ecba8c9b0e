package shooter

import (
	"fmt"

	"github.com/vovakirdan/shooter3d/internal/core"
)

// num formats a value with six significant digits, trailing zeros trimmed.
func num(f float64) string {
	return fmt.Sprintf("%.6g", f)
}

func point(v core.Vector3) string {
	return "(" + num(v.X) + ", " + num(v.Y) + ", " + num(v.Z) + ")"
}

// StatusLines returns the plain-text dump of the world, one entry per line.
func StatusLines(w *World) []string {
	bullets := "Bullets: "
	for _, b := range w.Player.Bullets {
		bullets += "B " + point(b.Position) + " "
	}
	enemies := "Enemies: "
	for _, e := range w.Enemies {
		enemies += "E " + point(e.Position) + " "
	}
	return []string{
		"Game Screen:",
		"Player: P " + point(w.Player.Position),
		bullets,
		enemies,
		"Player Health: " + num(w.Player.Health),
		"Player Score: " + fmt.Sprint(w.Player.Score),
	}
}

// GameOverLines returns the game-over summary and restart prompt.
func GameOverLines(score int) []string {
	return []string{
		"Game Over!",
		fmt.Sprintf("Your final score is: %d", score),
		"Do you want to play again? (Y/N)",
	}
}
