package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trex/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorTrex:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorCactus:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPterodactyl: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
