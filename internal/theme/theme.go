// Package theme provides the arcade's color palettes and the switcher that
// selects, persists and broadcasts the active one.
package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/kv"
)

// StorageKey is the key holding the user's saved theme.
const StorageKey = "portfolio-theme"

// Default is used when nothing is saved and the terminal is light.
const Default = "cyberpunk"

// ErrUnknownTheme is returned for names not in the catalogue.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme is a named palette with a display label.
type Theme struct {
	Name    string
	Label   string
	Palette core.Palette
}

var catalogue = []Theme{
	{"cyberpunk", "Cyberpunk Neon", core.Palette{
		Highlight: "#00F0FF", Accent: "#FF41B4", Secondary1: "#A359FF", Secondary2: "#FFDE59",
		PrimaryDark: "#010914", PrimaryMedium: "#1A0B35", Text: "#FFFFFF",
	}},
	{"brownish", "Brownish Retro", core.Palette{
		Highlight: "#E8A87C", Accent: "#C38D5E", Secondary1: "#D4A373", Secondary2: "#F4D35E",
		PrimaryDark: "#1E130C", PrimaryMedium: "#3B2418", Text: "#F5E6D3",
	}},
	{"green", "Retro Byte Green", core.Palette{
		Highlight: "#00FF41", Accent: "#39FF14", Secondary1: "#008F11", Secondary2: "#B3FF66",
		PrimaryDark: "#0D0208", PrimaryMedium: "#003B00", Text: "#D0FFD0",
	}},
	{"dark", "Dark Tech", core.Palette{
		Highlight: "#4CC9F0", Accent: "#F72585", Secondary1: "#7209B7", Secondary2: "#FFD166",
		PrimaryDark: "#0B0B0F", PrimaryMedium: "#1C1C24", Text: "#E0E0E0",
	}},
	{"vaporwave", "Vaporwave Pastel", core.Palette{
		Highlight: "#01CDFE", Accent: "#FF71CE", Secondary1: "#B967FF", Secondary2: "#FFFB96",
		PrimaryDark: "#2B1B3F", PrimaryMedium: "#3D2C5C", Text: "#FDF6FF",
	}},
}

func init() {
	for i := range catalogue {
		catalogue[i].Palette.Name = catalogue[i].Name
	}
}

// All returns every theme in display order.
func All() []Theme {
	out := make([]Theme, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a theme by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range catalogue {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Fallback returns the default palette.
func Fallback() core.Palette {
	t, _ := Lookup(Default)
	return t.Palette
}

// DetectDark reports whether the terminal has a dark background.
func DetectDark() bool {
	return lipgloss.HasDarkBackground()
}

// Switcher holds the active theme. Observers are notified synchronously,
// in subscription order, on every change.
type Switcher struct {
	mu        sync.Mutex
	store     kv.Store
	current   Theme
	chosen    bool
	observers map[int]func(core.Palette)
	order     []int
	nextID    int
}

// NewSwitcher picks the saved theme from store, or the system preference
// when nothing valid is saved. store may be nil.
func NewSwitcher(store kv.Store, darkBackground bool) *Switcher {
	s := &Switcher{store: store, observers: make(map[int]func(core.Palette))}

	if store != nil {
		if name, ok := store.Get(StorageKey); ok {
			if t, ok := Lookup(name); ok {
				s.current = t
				s.chosen = true
				return s
			}
		}
	}
	s.current = systemTheme(darkBackground)
	return s
}

func systemTheme(dark bool) Theme {
	name := Default
	if dark {
		name = "dark"
	}
	t, _ := Lookup(name)
	return t
}

// Current returns the active theme.
func (s *Switcher) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Palette returns the active palette.
func (s *Switcher) Palette() core.Palette {
	return s.Current().Palette
}

// Set activates a theme by name and saves the choice.
// A store failure is returned but the theme still changes.
func (s *Switcher) Set(name string) error {
	t, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}

	s.mu.Lock()
	s.current = t
	s.chosen = true
	store := s.store
	s.mu.Unlock()

	var err error
	if store != nil {
		if serr := store.Set(StorageKey, name); serr != nil {
			err = fmt.Errorf("theme: save %q: %w", name, serr)
		}
	}
	s.notify(t.Palette)
	return err
}

// Next cycles to the following theme and returns it.
func (s *Switcher) Next() (Theme, error) {
	cur := s.Current()
	idx := 0
	for i, t := range catalogue {
		if t.Name == cur.Name {
			idx = (i + 1) % len(catalogue)
			break
		}
	}
	next := catalogue[idx]
	return next, s.Set(next.Name)
}

// SystemChanged follows a change of the terminal background, unless the
// user picked a theme explicitly.
func (s *Switcher) SystemChanged(dark bool) {
	s.mu.Lock()
	if s.chosen {
		s.mu.Unlock()
		return
	}
	t := systemTheme(dark)
	changed := t.Name != s.current.Name
	s.current = t
	s.mu.Unlock()

	if changed {
		s.notify(t.Palette)
	}
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Switcher) Subscribe(fn func(core.Palette)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Switcher) notify(p core.Palette) {
	s.mu.Lock()
	fns := make([]func(core.Palette), 0, len(s.observers))
	for _, id := range s.order {
		if fn, ok := s.observers[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}
