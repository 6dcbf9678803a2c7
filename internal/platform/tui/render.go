package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/entropy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorBlack:     lipgloss.NewStyle().Foreground(lipgloss.Color("232")),
	core.ColorGray1:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorGray2:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorGray3:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	core.ColorGray4:     lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	core.ColorGray5:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
