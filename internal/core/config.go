package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Palette  Palette // Active theme colors
	Player   string  // Name recorded with high scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Player:   "Player",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// EventKind identifies a notable gameplay moment reported by a step.
type EventKind int

const (
	EventHit     EventKind = iota + 1 // player took damage
	EventCollect                      // player picked up a collectible
	EventShoot                        // player fired
	EventBoost                        // player started a boost
	EventExplode                      // an enemy was destroyed
	EventLevelUp                      // wave cleared
)

// String returns a human readable event name.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventCollect:
		return "collect"
	case EventShoot:
		return "shoot"
	case EventBoost:
		return "boost"
	case EventExplode:
		return "explode"
	case EventLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// Event is emitted by a game during Step so the platform can play sounds.
type Event struct {
	Kind EventKind
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
