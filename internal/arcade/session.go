package arcade

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/highscore"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// Recorder persists a finished session's score.
type Recorder interface {
	Record(gameID, player string, score int) error
}

// ScoreTable provides the standings shown on the title and game over overlays.
type ScoreTable interface {
	Table(gameID string) []highscore.Entry
	HighScore(gameID string) int
}

// Options configures a Session.
type Options struct {
	Runtime    core.RuntimeConfig
	HoldFrames int         // input hold window in frames, 0 asks the game
	Recorders  []Recorder  // called in order on game over
	Scores     ScoreTable  // optional, for overlays
	Logger     *log.Logger // optional
}

// Session owns one game instance and drives it through its lifecycle.
// All methods must be called from a single goroutine (the UI loop).
type Session struct {
	game      registry.Game
	cfg       core.RuntimeConfig
	life      Lifecycle
	loop      FrameLoop
	input     *core.InputSampler
	recorders []Recorder
	scores    ScoreTable
	logger    *log.Logger

	ticking bool
	state   core.GameState
	runs    int64
	frames  uint64
	best    int
	newBest bool
}

// NewSession creates an idle session and resets the game.
func NewSession(game registry.Game, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	hold := opts.HoldFrames
	if t, ok := game.(registry.InputTuner); ok && hold <= 0 {
		hold = Ticks(t.HoldWindow(), opts.Runtime.TickRate)
	}
	s := &Session{
		game:      game,
		cfg:       opts.Runtime,
		input:     core.NewInputSampler(hold),
		recorders: opts.Recorders,
		scores:    opts.Scores,
		logger:    logger.With("game", game.ID()),
	}
	s.resetGame()
	return s
}

// Game returns the hosted game.
func (s *Session) Game() registry.Game { return s.game }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.life.Phase() }

// State returns the game state after the last tick.
func (s *Session) State() core.GameState { return s.state }

// Pending returns the id of the scheduled frame, or 0.
func (s *Session) Pending() uint64 { return s.loop.Pending() }

// Frames returns the number of ticks run since the last reset.
func (s *Session) Frames() uint64 { return s.frames }

// TickRate returns the simulation rate in ticks per second.
func (s *Session) TickRate() int { return s.cfg.TickRate }

// Config returns the runtime configuration passed to the game.
func (s *Session) Config() core.RuntimeConfig { return s.cfg }

// Start begins play from Idle and returns the frame to schedule.
func (s *Session) Start() (uint64, error) {
	if err := s.life.Move(PhaseIdle, PhaseRunning); err != nil {
		return 0, err
	}
	s.logger.Debug("session started", "run", s.runs)
	return s.loop.Request(), nil
}

// Pause suspends a running session and cancels its pending frame.
func (s *Session) Pause() error {
	if err := s.life.Move(PhaseRunning, PhasePaused); err != nil {
		return err
	}
	s.loop.Cancel()
	s.input.Reset()
	return nil
}

// Resume continues a paused session and returns the one frame to schedule.
func (s *Session) Resume() (uint64, error) {
	if err := s.life.Move(PhasePaused, PhaseRunning); err != nil {
		return 0, err
	}
	return s.loop.Request(), nil
}

// Reset returns a finished session to Idle with a fresh game.
// Resetting an idle session does nothing.
func (s *Session) Reset() error {
	if s.life.Phase() == PhaseIdle {
		return nil
	}
	if err := s.life.Transition(PhaseIdle); err != nil {
		return err
	}
	s.loop.Cancel()
	s.resetGame()
	return nil
}

// Restart resets a finished session and starts it again.
func (s *Session) Restart() (uint64, error) {
	if err := s.Reset(); err != nil {
		return 0, err
	}
	return s.Start()
}

// Press routes a user action according to the phase. It returns a frame to
// schedule (or 0) and whether the action was consumed by the session.
// While running, gameplay actions are always consumed.
func (s *Session) Press(a core.Action) (uint64, bool) {
	switch s.life.Phase() {
	case PhaseIdle:
		if a == core.ActionConfirm || a == core.ActionFire {
			id, _ := s.Start()
			return id, true
		}
	case PhaseRunning:
		if a == core.ActionPause {
			return 0, s.Pause() == nil
		}
		if a.IsGameplay() {
			s.input.Press(a)
			return 0, true
		}
	case PhasePaused:
		if a == core.ActionPause || a == core.ActionConfirm {
			id, _ := s.Resume()
			return id, true
		}
		if a.IsGameplay() {
			return 0, true
		}
	case PhaseGameOver:
		if a == core.ActionRestart || a == core.ActionConfirm {
			id, err := s.Restart()
			return id, err == nil
		}
	}
	return 0, false
}

// Tick runs one frame if id is the pending frame and the session is
// running. It returns the next frame to schedule (0 when the loop stops)
// and the events the game reported.
func (s *Session) Tick(id uint64) (uint64, []core.Event) {
	if s.ticking {
		return 0, nil
	}
	if !s.loop.Fire(id) {
		return 0, nil
	}
	if s.life.Phase() != PhaseRunning {
		return 0, nil
	}

	s.ticking = true
	defer func() { s.ticking = false }()

	in := s.input.Snapshot()
	res := s.game.Step(in)
	s.state = res.State
	s.frames++

	if res.State.GameOver {
		s.finish()
		return 0, res.Events
	}
	return s.loop.Request(), res.Events
}

// Interval returns the wall-clock time between frames.
func (s *Session) Interval() time.Duration {
	return time.Second / time.Duration(s.cfg.TickRate)
}

// Resize updates the screen size. An idle game is rebuilt for the new size;
// a game in progress picks it up on its next reset.
func (s *Session) Resize(w, h int) {
	if w == s.cfg.ScreenW && h == s.cfg.ScreenH {
		return
	}
	s.cfg.ScreenW, s.cfg.ScreenH = w, h
	if s.life.Phase() == PhaseIdle {
		s.game.Reset(s.cfg)
		s.state = s.game.State()
	}
}

// ApplyPalette forwards a theme change to the game.
func (s *Session) ApplyPalette(p core.Palette) {
	s.cfg.Palette = p
	if t, ok := s.game.(Themed); ok {
		t.ApplyPalette(p)
	}
}

// SetPlayer sets the name recorded with scores.
func (s *Session) SetPlayer(name string) {
	s.cfg.Player = name
}

// Best returns the best score known for this game.
func (s *Session) Best() int {
	if s.scores == nil {
		return s.best
	}
	if b := s.scores.HighScore(s.game.ID()); b > s.best {
		return b
	}
	return s.best
}

// finish moves to GameOver: the pending frame is cancelled, effects are
// halted and the score is recorded.
func (s *Session) finish() {
	previous := s.Best()
	//nolint:errcheck // Running -> GameOver is always legal here
	s.life.Transition(PhaseGameOver)
	s.loop.Cancel()
	s.input.Reset()
	if h, ok := s.game.(Halter); ok {
		h.Halt()
	}

	score := s.state.Score
	s.newBest = score > previous
	if score > s.best {
		s.best = score
	}
	s.logger.Info("game over", "score", score, "frames", s.frames, "best", s.newBest)

	for _, r := range s.recorders {
		if err := r.Record(s.game.ID(), s.cfg.Player, score); err != nil {
			s.logger.Warn("failed to record score", "err", err)
		}
	}
}

func (s *Session) resetGame() {
	cfg := s.cfg
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	} else {
		cfg.Seed += s.runs
	}
	s.runs++
	s.frames = 0
	s.newBest = false
	s.input.Reset()
	s.game.Reset(cfg)
	s.state = s.game.State()
}

// Themed and Halter are the optional capabilities a game may offer.
type (
	Themed = registry.Themed
	Halter = registry.Halter
)
