package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/infestation/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
