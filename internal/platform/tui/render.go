package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkrasnov/puzzlebox/internal/core"
)

// colorStyles maps core.Color to lipgloss styles for the active theme.
var colorStyles = darkStyles()

func darkStyles() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func lightStyles() map[core.Color]lipgloss.Style {
	styles := darkStyles()
	// The bright variants wash out on light backgrounds.
	styles[core.ColorBrightRed] = styles[core.ColorRed]
	styles[core.ColorBrightGreen] = styles[core.ColorGreen]
	styles[core.ColorBrightYellow] = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
	styles[core.ColorBrightBlue] = styles[core.ColorBlue]
	styles[core.ColorBrightMagenta] = styles[core.ColorMagenta]
	styles[core.ColorBrightCyan] = styles[core.ColorCyan]
	styles[core.ColorBrightWhite] = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	styles[core.ColorGray] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return styles
}

// SetTheme selects the color theme by name. Call before any program
// starts; unknown names fall back to dark.
func SetTheme(name string) {
	if name == "light" {
		colorStyles = lightStyles()
		return
	}
	colorStyles = darkStyles()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
