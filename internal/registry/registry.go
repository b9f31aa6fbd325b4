// Package registry holds the game contract and a global catalogue of game
// factories. Games register themselves in init() so the arcade can list and
// start them by id without importing each one by hand.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract every minigame implements.
// Games hold only their own entities and rules; scheduling, lifecycle,
// persistence and overlays are handled by the arcade session around them.
type Game interface {
	// ID returns a unique identifier ("neonrider", "invaders").
	// Used for CLI commands and score keys.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset discards every entity and restores initial player state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score and game-over status.
	State() core.GameState
}

// Themed is implemented by games that recolor live entities on theme change.
type Themed interface {
	ApplyPalette(p core.Palette)
}

// Halter is implemented by games with in-flight effects (particles,
// shake, popups) that must stop when the session ends.
type Halter interface {
	Halt()
}

// Describer is implemented by games that publish a controls line for the
// title overlay.
type Describer interface {
	Controls() string
}

// InputTuner is implemented by games that configure how long a key press
// keeps an action held.
type InputTuner interface {
	HoldWindow() time.Duration
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
