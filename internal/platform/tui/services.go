package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/audio"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/highscore"
	"github.com/vovakirdan/retrowave-arcade/internal/kv"
	"github.com/vovakirdan/retrowave-arcade/internal/storage"
	"github.com/vovakirdan/retrowave-arcade/internal/theme"
)

// volumeStep is the change applied by one +/- key press.
const volumeStep = 0.1

// noticeDuration is how long a status message stays on screen.
const noticeDuration = 2 * time.Second

// Services are the collaborators shared by the menu, scoreboard and game
// screens of one terminal session.
type Services struct {
	Board   *highscore.Board // top-5 tables, required
	History *storage.Store   // optional append-only score history
	Themes  *theme.Switcher
	Audio   audio.Player
	Logger  *log.Logger
	Runtime core.RuntimeConfig
}

// withDefaults fills unset collaborators with in-memory or silent ones.
func (s Services) withDefaults() Services {
	if s.Board == nil {
		s.Board = highscore.NewBoard(kv.NewMemory())
	}
	if s.Themes == nil {
		s.Themes = theme.NewSwitcher(nil, false)
	}
	if s.Audio == nil {
		s.Audio = audio.NewNull()
	}
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	if s.Runtime.TickRate <= 0 {
		s.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if s.Runtime.ScreenW <= 0 || s.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		s.Runtime.ScreenW, s.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	return s
}

// recorders returns where finished games are recorded, table first.
func (s Services) recorders() []arcade.Recorder {
	out := []arcade.Recorder{s.Board}
	if s.History != nil {
		out = append(out, s.History)
	}
	return out
}

// shared handles the theme and music keys available on every screen.
// It returns a status message and whether the action was handled.
func (s Services) shared(a core.Action) (string, bool) {
	switch a {
	case core.ActionTheme:
		t, err := s.Themes.Next()
		if err != nil {
			s.Logger.Warn("failed to save theme", "err", err)
		}
		return "Theme: " + t.Label, true

	case core.ActionMusic:
		if err := s.Audio.Toggle(); err != nil {
			s.Logger.Warn("music toggle failed", "err", err)
		}
		if s.Audio.Playing() {
			return "♪ " + s.trackTitle(), true
		}
		return "Music paused", true

	case core.ActionNextTrack:
		s.Audio.Next()
		return "♪ " + s.trackTitle(), true

	case core.ActionPrevTrack:
		s.Audio.Prev()
		return "♪ " + s.trackTitle(), true

	case core.ActionVolumeUp, core.ActionVolumeDown:
		step := volumeStep
		if a == core.ActionVolumeDown {
			step = -step
		}
		s.Audio.SetVolume(s.Audio.Volume() + step)
		return fmt.Sprintf("Volume %d%%", int(s.Audio.Volume()*100+0.5)), true
	}
	return "", false
}

func (s Services) trackTitle() string {
	t, _ := s.Audio.Track()
	return t.Title
}

// footer is the theme and music status line shown under the menu.
func (s Services) footer() string {
	state := "off"
	if s.Audio.Playing() {
		state = "on"
	}
	return fmt.Sprintf("Theme: %s  |  Music %s: %s  |  T theme  M music  N next",
		s.Themes.Current().Label, state, s.trackTitle())
}

// notice is a status message that expires.
type notice struct {
	text  string
	until time.Time
}

func newNotice(text string) notice {
	return notice{text: text, until: time.Now().Add(noticeDuration)}
}

// current returns the message, the audio player's notice when none is
// showing, or "".
func (n notice) current(p audio.Player) string {
	if n.text != "" && time.Now().Before(n.until) {
		return n.text
	}
	return p.Notice()
}
