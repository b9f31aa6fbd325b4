// Package arcade implements the loop shared by every minigame: the session
// lifecycle, frame scheduling, spawning, motion, the score and health
// ledger, frame-counted timers and the overlays drawn around a game.
package arcade

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle operation is not legal
// in the current phase. The phase is left unchanged.
var ErrInvalidTransition = errors.New("arcade: invalid transition")

// Phase is the state of a game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// legal lists every allowed edge of the state machine.
var legal = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver},
	PhasePaused:   {PhaseRunning},
	PhaseGameOver: {PhaseIdle},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Phase) bool {
	for _, p := range legal[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Lifecycle tracks the current phase and rejects illegal transitions.
// The zero value starts in PhaseIdle.
type Lifecycle struct {
	phase Phase
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// Transition moves to the given phase if the edge is legal.
func (l *Lifecycle) Transition(to Phase) error {
	if !CanTransition(l.phase, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.phase, to)
	}
	l.phase = to
	return nil
}

// Move transitions from -> to, failing unless the current phase is from.
// It rejects operations whose target is legal from some other phase.
func (l *Lifecycle) Move(from, to Phase) error {
	if l.phase != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.phase, to)
	}
	return l.Transition(to)
}

// FrameLoop hands out frame request ids so at most one frame is pending.
//
// A request id travels with the scheduled tick message. When the tick
// arrives, Fire accepts it only if it is still the pending request;
// cancelled or superseded ticks are dropped.
type FrameLoop struct {
	seq     uint64
	pending uint64
}

// Request schedules a frame and returns its id. It returns 0 when a frame
// is already pending, so callers never start a second loop.
func (l *FrameLoop) Request() uint64 {
	if l.pending != 0 {
		return 0
	}
	l.seq++
	l.pending = l.seq
	return l.pending
}

// Cancel drops the pending frame, if any.
func (l *FrameLoop) Cancel() {
	l.pending = 0
}

// Pending returns the id of the pending frame, or 0.
func (l *FrameLoop) Pending() uint64 {
	return l.pending
}

// Fire consumes the pending frame if id matches it.
func (l *FrameLoop) Fire(id uint64) bool {
	if id == 0 || id != l.pending {
		return false
	}
	l.pending = 0
	return true
}
