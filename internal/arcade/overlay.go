package arcade

import (
	"fmt"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// Render draws the game and, outside of play, the phase overlay.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)

	switch s.life.Phase() {
	case PhaseIdle:
		s.drawTitle(dst)
	case PhasePaused:
		s.drawPaused(dst)
	case PhaseGameOver:
		s.drawGameOver(dst)
	}
}

// panel clears a centered box and returns its first inner row.
func panel(dst *core.Screen, w, h int, frame core.Color) (x, y int) {
	w = core.Min(w, dst.Width())
	h = core.Min(h, dst.Height())
	x = (dst.Width() - w) / 2
	y = (dst.Height() - h) / 2
	r := core.NewRect(x, y, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, frame)
	return x, y + 1
}

func (s *Session) drawTitle(dst *core.Screen) {
	p := s.cfg.Palette
	entries := []string{}
	if s.scores != nil {
		for i, e := range s.scores.Table(s.game.ID()) {
			entries = append(entries, fmt.Sprintf("%d. %-10.10s %6d  %s", i+1, e.Player, e.Score, e.Date))
		}
	}

	controls := ""
	if d, ok := s.game.(registry.Describer); ok {
		controls = d.Controls()
	}

	h := 8 + len(entries)
	if len(entries) > 0 {
		h += 2
	}
	_, y := panel(dst, 40, h, p.Highlight.Or(core.ColorMagenta))

	dst.DrawTextCenteredColor(y+1, s.game.Title(), p.Accent.Or(core.ColorCyan))
	if controls != "" {
		dst.DrawTextCenteredColor(y+3, controls, p.Text.Or(core.ColorGray))
	}
	dst.DrawTextCenteredColor(y+4, "ENTER start  B menu  Q quit", p.Text.Or(core.ColorGray))

	if len(entries) > 0 {
		dst.DrawTextCenteredColor(y+6, "HIGH SCORES", p.Secondary2.Or(core.ColorYellow))
		for i, line := range entries {
			dst.DrawTextCenteredColor(y+7+i, line, p.Text.Or(core.ColorWhite))
		}
	}
}

func (s *Session) drawPaused(dst *core.Screen) {
	p := s.cfg.Palette
	_, y := panel(dst, 24, 5, p.Accent.Or(core.ColorCyan))
	dst.DrawTextCenteredColor(y, "PAUSED", p.Highlight.Or(core.ColorMagenta))
	dst.DrawTextCenteredColor(y+2, "P resume  Q quit", p.Text.Or(core.ColorGray))
}

func (s *Session) drawGameOver(dst *core.Screen) {
	p := s.cfg.Palette
	_, y := panel(dst, 32, 9, p.Highlight.Or(core.ColorRed))

	dst.DrawTextCenteredColor(y, "GAME OVER", p.Highlight.Or(core.ColorRed))
	dst.DrawTextCenteredColor(y+2, fmt.Sprintf("Final score: %d", s.state.Score), p.Text.Or(core.ColorWhite))
	dst.DrawTextCenteredColor(y+3, fmt.Sprintf("Best: %d", s.Best()), p.Text.Or(core.ColorWhite))
	if s.newBest {
		dst.DrawTextCenteredColor(y+4, "NEW HIGH SCORE!", p.Secondary2.Or(core.ColorYellow))
	}
	dst.DrawTextCenteredColor(y+6, "R restart  B menu", p.Accent.Or(core.ColorCyan))
}
