package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - steer / move left
	ActionRight             // D, Right arrow - steer / move right
	ActionUp                // W, Up arrow - climb (racer)
	ActionDown              // S, Down arrow - dive (racer)
	ActionFire              // Space - shoot (invaders), boost (racer)
	ActionPause             // P, Escape - pause/unpause game
	ActionConfirm           // Enter - start / confirm selection in menu
	ActionRestart           // R key - restart game after game over
	ActionBack              // B - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionTheme             // T - cycle color theme
	ActionMusic             // M - toggle music
	ActionNextTrack         // N - next track
	ActionPrevTrack         // Shift+N - previous track
	ActionVolumeUp          // + / =
	ActionVolumeDown        // -
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionTheme:
		return "Theme"
	case ActionMusic:
		return "Music"
	case ActionNextTrack:
		return "NextTrack"
	case ActionPrevTrack:
		return "PrevTrack"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action drives the player entity.
// Gameplay actions are held across ticks by the InputSampler; everything
// else is a one-shot command.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown, ActionFire:
		return true
	}
	return false
}

// Opposite returns the action that cancels a directional action, or ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	}
	return ActionNone
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions holds the actions that were pressed since the previous frame.
	Actions map[Action]bool
	// Held holds the actions that are currently held down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Holding returns true if the action is held, or was pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	if f.Held != nil && f.Held[a] {
		return true
	}
	return f.Has(a)
}

// Axis returns -1, 0 or 1 for a pair of opposing held actions.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.Holding(neg) {
		v--
	}
	if f.Holding(pos) {
		v++
	}
	return v
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// InputSampler turns discrete key presses into per-frame held state.
//
// Terminals report key presses and auto-repeat, but no releases, so a press
// keeps its action held for a window of frames. Each repeat extends the
// window. Pressing a direction releases the opposite one immediately,
// which gives last-write-wins semantics without debouncing.
type InputSampler struct {
	hold    uint64
	frame   uint64
	until   map[Action]uint64
	pressed map[Action]bool
}

// NewInputSampler creates a sampler holding presses for holdFrames frames.
// A window below one frame is raised to one.
func NewInputSampler(holdFrames int) *InputSampler {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &InputSampler{
		hold:    uint64(holdFrames),
		until:   make(map[Action]uint64),
		pressed: make(map[Action]bool),
	}
}

// Press records a key press for the given action.
func (s *InputSampler) Press(a Action) {
	if a == ActionNone {
		return
	}
	s.pressed[a] = true
	if !a.IsGameplay() {
		return
	}
	if opp := a.Opposite(); opp != ActionNone {
		delete(s.until, opp)
	}
	s.until[a] = s.frame + s.hold
}

// Release drops the held state of an action.
func (s *InputSampler) Release(a Action) {
	delete(s.until, a)
}

// Snapshot returns the input for the current frame and advances to the next.
// Presses are reported exactly once.
func (s *InputSampler) Snapshot() InputFrame {
	f := NewInputFrame()
	for a := range s.pressed {
		f.Set(a)
		delete(s.pressed, a)
	}
	for a, until := range s.until {
		if until > s.frame {
			f.Hold(a)
		} else {
			delete(s.until, a)
		}
	}
	s.frame++
	return f
}

// Reset drops all held and pending input.
func (s *InputSampler) Reset() {
	for a := range s.until {
		delete(s.until, a)
	}
	for a := range s.pressed {
		delete(s.pressed, a)
	}
}
