package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/games/shooter"
)

type cellClass int

const (
	classPlain cellClass = iota
	classPlayer
	classBullet
	classEnemy
	classHUD
)

var classStyles = map[cellClass]lipgloss.Style{
	classPlain:  lipgloss.NewStyle(),
	classPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	classBullet: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	classEnemy:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	classHUD:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func classify(y int, r rune) cellClass {
	if y == 0 {
		return classHUD
	}
	switch r {
	case shooter.PlayerGlyph:
		return classPlayer
	case shooter.BulletGlyph:
		return classBullet
	case shooter.EnemyGlyph:
		return classEnemy
	}
	return classPlain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same class share one styled run. Glyph letters
// inside sidebar and prompt text are coloured too.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := classify(y, s.Get(x, y))

			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if classify(y, r) != start {
					break
				}
				run.WriteRune(r)
				x++
			}
			sb.WriteString(classStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
