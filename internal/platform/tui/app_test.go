package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func step(a App, k string) App {
	next, _ := a.Update(key(k))
	return next.(App)
}

func TestAppFlow(t *testing.T) {
	svc, _ := testServices()
	a := NewApp(svc)

	if !strings.Contains(a.View(), "Stub Blaster") {
		t.Fatal("menu should list registered games")
	}

	a = step(a, "enter")
	if a.current != screenGame {
		t.Fatalf("current = %v, expected the game screen", a.current)
	}
	if !strings.Contains(a.View(), "Stub Blaster") {
		t.Error("title overlay should name the game")
	}

	a = step(a, "b")
	if a.current != screenMenu {
		t.Fatalf("current = %v, expected back on the menu", a.current)
	}

	a = step(a, "tab")
	if a.current != screenScoreboard {
		t.Fatalf("current = %v, expected the scoreboard", a.current)
	}
	if !strings.Contains(a.View(), "No scores recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	a = step(a, "esc")
	if a.current != screenMenu {
		t.Errorf("current = %v, expected back on the menu", a.current)
	}
}

func TestAppMenuShowsBestAfterGame(t *testing.T) {
	svc, _ := testServices()
	svc.Board.Record("stub", "ada", 70)

	a := NewApp(svc)
	if !strings.Contains(a.View(), "best 70") {
		t.Errorf("menu should show the best score:\n%s", a.View())
	}
}

func TestAppMenuThemeKey(t *testing.T) {
	svc, _ := testServices()
	a := NewApp(svc)
	before := svc.Themes.Current().Name

	a = step(a, "t")
	if svc.Themes.Current().Name == before {
		t.Error("T on the menu should cycle the theme")
	}
	if !strings.Contains(a.View(), svc.Themes.Current().Label) {
		t.Error("footer should name the new theme")
	}
}

func TestAppQuit(t *testing.T) {
	svc, _ := testServices()
	a := NewApp(svc)
	next, cmd := a.Update(key("q"))
	a = next.(App)
	if !a.quitting || cmd == nil {
		t.Fatal("Q should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("cmd() = %T, expected tea.QuitMsg", msg)
	}
}
