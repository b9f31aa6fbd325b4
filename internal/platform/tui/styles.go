package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// Styles are the lipgloss styles of the menu and scoreboard, derived from
// the active palette so both follow the theme switcher.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	Help       lipgloss.Style
	Footer     lipgloss.Style
	Notice     lipgloss.Style
	Border     lipgloss.Style
	Empty      lipgloss.Style
	TabActive  lipgloss.Style
	Tab        lipgloss.Style
}

func color(c, fallback core.Color) lipgloss.Color {
	return lipgloss.Color(string(c.Or(fallback)))
}

// NewStyles builds the styles for palette p.
func NewStyles(p core.Palette) Styles {
	accent := color(p.Accent, core.ColorMagenta)
	highlight := color(p.Highlight, core.ColorCyan)
	text := color(p.Text, core.ColorWhite)
	dim := color(p.Secondary1, core.ColorGray)

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle:   lipgloss.NewStyle().Foreground(text),
		ItemNormal: lipgloss.NewStyle().Foreground(text),
		ItemActive: lipgloss.NewStyle().Bold(true).Foreground(highlight),
		Help:       lipgloss.NewStyle().Foreground(dim),
		Footer:     lipgloss.NewStyle().Foreground(color(p.Secondary2, core.ColorYellow)),
		Notice:     lipgloss.NewStyle().Italic(true).Foreground(accent),
		Border:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(0, 1),
		Empty:      lipgloss.NewStyle().Italic(true).Foreground(dim).Padding(2, 4),
		TabActive:  lipgloss.NewStyle().Bold(true).Foreground(color(p.PrimaryDark, core.ColorDefault)).Background(highlight).Padding(0, 1),
		Tab:        lipgloss.NewStyle().Foreground(dim).Padding(0, 1),
	}
}
