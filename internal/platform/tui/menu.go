package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	svc            Services
	keys           *KeyMapper
	notice         notice
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(svc Services) MenuModel {
	svc = svc.withDefaults()
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Best:   svc.Board.HighScore(g.ID),
		})
	}

	return MenuModel{
		items:  items,
		width:  svc.Runtime.ScreenW,
		height: svc.Runtime.ScreenH,
		svc:    svc,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.svc.Runtime.ScreenW = msg.Width
		m.svc.Runtime.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionNone, MenuActionBack:
		if text, ok := m.svc.shared(m.keys.MapKey(msg)); ok {
			m.notice = newNotice(text)
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	st := NewStyles(m.svc.Themes.Palette())
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(st.Title.Render("R E T R O W A V E   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(st.Subtitle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor, style := "  ", st.ItemNormal
		if i == m.cursor {
			cursor, style = "> ", st.ItemActive
		}
		line := fmt.Sprintf("%s%-20s best %d", cursor, item.Title, item.Best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(st.Help.Render(controls), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(st.Footer.Render(m.svc.footer()), m.width))
	b.WriteString("\n")
	if text := m.notice.current(m.svc.Audio); text != "" {
		b.WriteString("\n")
		b.WriteString(centerText(st.Notice.Render(text), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.svc.Runtime
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
