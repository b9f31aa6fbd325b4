package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// GameModel is the Bubble Tea model for one game session.
type GameModel struct {
	session     *arcade.Session
	screen      *core.Screen
	painter     *Painter
	svc         Services
	keys        *KeyMapper
	unsubscribe func()
	notice      notice
	standalone  bool // quit instead of returning to a menu
	quitting    bool
	backToMenu  bool
}

// NewGameModel creates a game screen. The game starts on its title overlay.
func NewGameModel(game registry.Game, svc Services) GameModel {
	svc = svc.withDefaults()
	cfg := svc.Runtime
	cfg.Palette = svc.Themes.Palette()

	session := arcade.NewSession(game, arcade.Options{
		Runtime:   cfg,
		Recorders: svc.recorders(),
		Scores:    svc.Board,
		Logger:    svc.Logger,
	})

	return GameModel{
		session:     session,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:     NewPainter(),
		svc:         svc,
		keys:        NewKeyMapper(),
		unsubscribe: svc.Themes.Subscribe(session.ApplyPalette),
	}
}

// Init implements tea.Model. Nothing ticks until the player starts.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		m.close()
		return m, tea.Quit

	case core.ActionBack:
		if m.session.Phase() == arcade.PhaseRunning {
			return m, nil
		}
		m.backToMenu = true
		m.close()
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if text, ok := m.svc.shared(action); ok {
		m.notice = newNotice(text)
		return m, nil
	}

	id, _ := m.session.Press(action)
	if m.session.Phase() == arcade.PhasePaused {
		m.svc.Audio.Halt()
	}
	return m, tickCmd(id, m.session.Interval())
}

// handleTick runs a scheduled frame and plays the sounds it reported.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	next, events := m.session.Tick(msg.ID)
	for _, e := range events {
		m.svc.Audio.Effect(e.Kind)
	}
	return m, tickCmd(next, m.session.Interval())
}

// close detaches the game from the theme switcher and silences effects.
func (m *GameModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.svc.Audio.Halt()
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.svc.Logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.svc.Logger.Info("screenshot saved", "path", path)
}

// render draws the game, its overlay and the status line into the buffer.
func (m GameModel) render() {
	m.screen.Clear()
	m.session.Render(m.screen)
	if text := m.notice.current(m.svc.Audio); text != "" {
		p := m.session.Config().Palette
		m.screen.DrawTextColor(1, m.screen.Height()-1, text, p.Secondary2.Or(core.ColorYellow))
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return m.painter.Render(m.screen)
}

// Session returns the underlying game session.
func (m GameModel) Session() *arcade.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame plays a single game until the player quits.
func RunGame(game registry.Game, svc Services) error {
	model := NewGameModel(game, svc)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
