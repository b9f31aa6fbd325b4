package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// screenKind is the screen an App is showing.
type screenKind int

const (
	screenMenu screenKind = iota
	screenScoreboard
	screenGame
)

// App manages the full arcade flow: menu -> game -> menu, with the
// scoreboard one key away. It is the top-level model for local menu play
// and for every SSH connection.
type App struct {
	svc        Services
	current    screenKind
	menu       MenuModel
	scoreboard ScoreboardModel
	game       GameModel
	quitting   bool
}

// NewApp creates an App showing the menu.
func NewApp(svc Services) App {
	svc = svc.withDefaults()
	return App{svc: svc, menu: NewMenuModel(svc)}
}

// Init initializes the session.
func (m App) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.svc.Runtime.ScreenW = wsm.Width
		m.svc.Runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.svc)
		m.current = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.svc.Logger.Error("cannot create game", "game", id, "err", err)
			m.menu = NewMenuModel(m.svc)
			return m, nil
		}
		m.game = NewGameModel(game, m.svc)
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m App) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.showMenu()
	}
	return m, cmd
}

func (m App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.showMenu()
	}
	return m, cmd
}

// showMenu returns to a fresh menu, which rereads the best scores.
func (m App) showMenu() (tea.Model, tea.Cmd) {
	m.game = GameModel{}
	m.current = screenMenu
	m.menu = NewMenuModel(m.svc)
	return m, m.menu.Init()
}

// View renders the current view.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Run starts the arcade menu in the local terminal.
func Run(svc Services) error {
	p := tea.NewProgram(
		NewApp(svc),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
