package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// Painter converts a Screen buffer to a styled string. Styles are cached
// per color; each UI model owns its own Painter.
type Painter struct {
	styles map[core.Color]lipgloss.Style
}

// NewPainter creates a painter with an empty style cache.
func NewPainter() *Painter {
	return &Painter{styles: make(map[core.Color]lipgloss.Style)}
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(c)))
	}
	p.styles[c] = s
	return s
}

// Render groups adjacent cells with the same color to minimize ANSI
// escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if start == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
