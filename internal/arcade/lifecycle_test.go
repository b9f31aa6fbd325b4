package arcade

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	phases := []Phase{PhaseIdle, PhaseRunning, PhasePaused, PhaseGameOver}
	allowed := map[[2]Phase]bool{
		{PhaseIdle, PhaseRunning}:     true,
		{PhaseRunning, PhasePaused}:   true,
		{PhasePaused, PhaseRunning}:   true,
		{PhaseRunning, PhaseGameOver}: true,
		{PhaseGameOver, PhaseIdle}:    true,
	}

	for _, from := range phases {
		for _, to := range phases {
			expected := allowed[[2]Phase{from, to}]
			if got := CanTransition(from, to); got != expected {
				t.Errorf("CanTransition(%s, %s) = %v, expected %v", from, to, got, expected)
			}
		}
	}
}

func TestLifecycleRejectsIllegal(t *testing.T) {
	var l Lifecycle
	if l.Phase() != PhaseIdle {
		t.Fatalf("zero Lifecycle phase = %s, expected idle", l.Phase())
	}

	err := l.Transition(PhasePaused)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Transition(paused) error = %v, expected ErrInvalidTransition", err)
	}
	if l.Phase() != PhaseIdle {
		t.Errorf("illegal transition changed phase to %s", l.Phase())
	}

	if err := l.Transition(PhaseRunning); err != nil {
		t.Errorf("Transition(running) error = %v", err)
	}
}

func TestFrameLoopSinglePending(t *testing.T) {
	var l FrameLoop

	id := l.Request()
	if id == 0 {
		t.Fatal("Request() = 0 on empty loop")
	}
	if again := l.Request(); again != 0 {
		t.Errorf("second Request() = %d, expected 0 while pending", again)
	}
	if !l.Fire(id) {
		t.Error("Fire(pending) = false")
	}
	if l.Fire(id) {
		t.Error("Fire() accepted the same id twice")
	}
}

func TestFrameLoopCancelDropsStale(t *testing.T) {
	var l FrameLoop

	stale := l.Request()
	l.Cancel()
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d after Cancel, expected 0", l.Pending())
	}

	fresh := l.Request()
	if fresh == stale {
		t.Fatal("Request() after Cancel reused an id")
	}
	if l.Fire(stale) {
		t.Error("Fire(stale) = true, expected stale frame to be dropped")
	}
	if !l.Fire(fresh) {
		t.Error("Fire(fresh) = false")
	}
	if l.Fire(0) {
		t.Error("Fire(0) = true")
	}
}

func TestLifecycleMoveRequiresSource(t *testing.T) {
	tests := []struct {
		name     string
		path     []Phase
		from, to Phase
		ok       bool
	}{
		{"start from idle", nil, PhaseIdle, PhaseRunning, true},
		{"resume from idle", nil, PhasePaused, PhaseRunning, false},
		{"start from paused", []Phase{PhaseRunning, PhasePaused}, PhaseIdle, PhaseRunning, false},
		{"resume from paused", []Phase{PhaseRunning, PhasePaused}, PhasePaused, PhaseRunning, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l Lifecycle
			for _, p := range tc.path {
				if err := l.Transition(p); err != nil {
					t.Fatalf("Transition(%s) error = %v", p, err)
				}
			}
			before := l.Phase()
			err := l.Move(tc.from, tc.to)
			if tc.ok {
				if err != nil || l.Phase() != tc.to {
					t.Errorf("Move() = %v, phase %s", err, l.Phase())
				}
				return
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Move() error = %v, expected ErrInvalidTransition", err)
			}
			if l.Phase() != before {
				t.Errorf("rejected Move() changed phase to %s", l.Phase())
			}
		})
	}
}
