package theme

import (
	"errors"
	"testing"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/kv"
)

func TestCatalogue(t *testing.T) {
	names := []string{"cyberpunk", "brownish", "green", "dark", "vaporwave"}
	all := All()
	if len(all) != len(names) {
		t.Fatalf("len(All()) = %d, expected %d", len(all), len(names))
	}
	for i, th := range all {
		if th.Name != names[i] {
			t.Errorf("All()[%d] = %q, expected %q", i, th.Name, names[i])
		}
		if th.Palette.Name != th.Name {
			t.Errorf("palette name %q does not match theme %q", th.Palette.Name, th.Name)
		}
		for role, c := range th.Palette.Roles() {
			if c == core.ColorDefault {
				t.Errorf("theme %s has no %s color", th.Name, role)
			}
		}
	}
}

func TestNewSwitcherPreference(t *testing.T) {
	tests := []struct {
		name     string
		saved    string
		dark     bool
		expected string
	}{
		{"nothing saved, light", "", false, "cyberpunk"},
		{"nothing saved, dark", "", true, "dark"},
		{"saved wins over dark", "green", true, "green"},
		{"invalid saved ignored", "neon-pink", false, "cyberpunk"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := kv.NewMemory()
			if tc.saved != "" {
				_ = store.Set(StorageKey, tc.saved)
			}
			s := NewSwitcher(store, tc.dark)
			if got := s.Current().Name; got != tc.expected {
				t.Errorf("Current() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestSwitcherSetPersistsAndNotifies(t *testing.T) {
	store := kv.NewMemory()
	s := NewSwitcher(store, false)

	var got []string
	unsubscribe := s.Subscribe(func(p core.Palette) { got = append(got, p.Name) })

	if err := s.Set("vaporwave"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _ := store.Get(StorageKey); v != "vaporwave" {
		t.Errorf("saved theme = %q, expected vaporwave", v)
	}
	if len(got) != 1 || got[0] != "vaporwave" {
		t.Errorf("notifications = %v, expected [vaporwave]", got)
	}

	unsubscribe()
	_ = s.Set("green")
	if len(got) != 1 {
		t.Errorf("unsubscribed observer was notified: %v", got)
	}

	if err := s.Set("nope"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Set(nope) error = %v, expected ErrUnknownTheme", err)
	}
	if s.Current().Name != "green" {
		t.Error("unknown theme should not change the active one")
	}
}

func TestSwitcherNextCycles(t *testing.T) {
	s := NewSwitcher(nil, false)
	seen := []string{s.Current().Name}
	for i := 0; i < len(All()); i++ {
		next, err := s.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		seen = append(seen, next.Name)
	}
	if seen[0] != seen[len(seen)-1] {
		t.Errorf("Next() did not wrap around: %v", seen)
	}
	if seen[1] != "brownish" {
		t.Errorf("first Next() = %q, expected brownish", seen[1])
	}
}

func TestSystemChangedRespectsChoice(t *testing.T) {
	s := NewSwitcher(nil, false)
	calls := 0
	s.Subscribe(func(core.Palette) { calls++ })

	s.SystemChanged(true)
	if s.Current().Name != "dark" || calls != 1 {
		t.Errorf("SystemChanged(true) = %q with %d calls, expected dark and 1", s.Current().Name, calls)
	}

	_ = s.Set("green")
	s.SystemChanged(false)
	if s.Current().Name != "green" {
		t.Error("system change should not override an explicit choice")
	}
}
