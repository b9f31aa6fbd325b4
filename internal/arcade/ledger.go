package arcade

import (
	"sort"
	"time"
)

// Ledger is the only place score and health change.
// Score never decreases and health never increases except through Reset.
type Ledger struct {
	score  int
	health int
	max    int
}

// NewLedger creates a ledger with full health.
func NewLedger(maxHealth int) *Ledger {
	return &Ledger{health: maxHealth, max: maxHealth}
}

// Score returns the current score.
func (l *Ledger) Score() int { return l.score }

// Health returns the remaining health (or lives).
func (l *Ledger) Health() int { return l.health }

// Max returns the starting health.
func (l *Ledger) Max() int { return l.max }

// Dead reports whether health reached zero.
func (l *Ledger) Dead() bool { return l.health <= 0 }

// Fraction returns health / max in [0, 1].
func (l *Ledger) Fraction() float64 {
	if l.max <= 0 {
		return 0
	}
	return float64(l.health) / float64(l.max)
}

// Award adds points. Non-positive amounts are ignored.
func (l *Ledger) Award(points int) {
	if points > 0 {
		l.score += points
	}
}

// Damage subtracts health, clamped at zero. It returns true when this hit
// emptied the health. Non-positive amounts are ignored.
func (l *Ledger) Damage(amount int) bool {
	if amount <= 0 || l.health <= 0 {
		return false
	}
	l.health -= amount
	if l.health < 0 {
		l.health = 0
	}
	return l.health == 0
}

// Reset zeroes the score and restores full health.
func (l *Ledger) Reset() {
	l.score = 0
	l.health = l.max
}

// Ticks converts a duration to a whole number of frames at rate ticks per
// second, rounding up. Positive durations last at least one frame.
func Ticks(d time.Duration, rate int) int {
	if d <= 0 || rate <= 0 {
		return 0
	}
	return int((d*time.Duration(rate) + time.Second - 1) / time.Second)
}

// Timers is a set of named frame countdowns. Because they count frames,
// a paused session freezes them and nothing fires once they are cleared.
type Timers struct {
	left map[string]int
}

// Set starts or restarts a countdown of the given number of frames.
// A non-positive count stops the timer.
func (t *Timers) Set(name string, frames int) {
	if frames <= 0 {
		t.Stop(name)
		return
	}
	if t.left == nil {
		t.left = make(map[string]int)
	}
	t.left[name] = frames
}

// Stop cancels one timer.
func (t *Timers) Stop(name string) {
	delete(t.left, name)
}

// Active reports whether a timer is running.
func (t *Timers) Active(name string) bool {
	return t.left[name] > 0
}

// Remaining returns the frames left on a timer.
func (t *Timers) Remaining(name string) int {
	return t.left[name]
}

// Advance counts every timer down by one frame and returns the names of
// timers that expired on this frame, sorted.
func (t *Timers) Advance() []string {
	var expired []string
	for name, n := range t.left {
		n--
		if n <= 0 {
			delete(t.left, name)
			expired = append(expired, name)
			continue
		}
		t.left[name] = n
	}
	sort.Strings(expired)
	return expired
}

// Len returns the number of running timers.
func (t *Timers) Len() int {
	return len(t.left)
}

// Clear cancels every timer.
func (t *Timers) Clear() {
	for name := range t.left {
		delete(t.left, name)
	}
}
