// Package audio plays the arcade's synthesized retro soundtrack and the
// one-shot gameplay effects through gopxl/beep.
package audio

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/kv"
)

// VolumeKey is the key holding the saved music volume.
const VolumeKey = "music-volume"

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// UnavailableNotice is the single message shown when sound cannot play.
const UnavailableNotice = "audio playback unavailable"

// ErrAudioUnavailable is returned when the output device cannot be opened.
var ErrAudioUnavailable = errors.New("audio: playback unavailable")

// Player is the music player used by the UI.
type Player interface {
	Play() error
	Pause()
	Toggle() error
	Playing() bool
	Next()
	Prev()
	Select(i int)
	Track() (Track, int)
	SetVolume(v float64)
	Volume() float64
	Progress() (elapsed, total time.Duration)
	Levels(n int) []float64
	Effect(kind core.EventKind)
	Halt()
	// Notice returns a message for the user, or "".
	Notice() string
	Close()
}

// Config controls audio output.
type Config struct {
	Enabled bool
	Store   kv.Store // optional, for the saved volume
}

// speakerPlayer is a Deck routed to the system speaker. Volume changes are
// saved so the next session starts at the same level.
type speakerPlayer struct {
	*Deck
	store kv.Store
}

// Open starts audio output. When sound is disabled it returns a silent
// player; when the device fails it returns a silent player that shows
// UnavailableNotice together with an error wrapping ErrAudioUnavailable.
func Open(cfg Config) (Player, error) {
	if !cfg.Enabled {
		return &Null{volume: LoadVolume(cfg.Store)}, nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return &Null{notice: UnavailableNotice, volume: LoadVolume(cfg.Store)},
			fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	deck := NewDeck(SampleRate, Playlist, LoadVolume(cfg.Store))
	speaker.Play(deck)
	return &speakerPlayer{Deck: deck, store: cfg.Store}, nil
}

// LoadVolume reads the saved volume, or DefaultVolume.
func LoadVolume(store kv.Store) float64 {
	if store == nil {
		return DefaultVolume
	}
	raw, ok := store.Get(VolumeKey)
	if !ok {
		return DefaultVolume
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return DefaultVolume
	}
	return v
}

func saveVolume(store kv.Store, v float64) {
	if store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	store.Set(VolumeKey, strconv.FormatFloat(v, 'f', 2, 64))
}

func (p *speakerPlayer) SetVolume(v float64) {
	p.Deck.SetVolume(v)
	saveVolume(p.store, p.Deck.Volume())
}

func (p *speakerPlayer) Close() {
	p.Deck.Close()
	speaker.Clear()
}

// Null is a silent Player. It keeps the playlist state so the UI still
// works when sound is off.
type Null struct {
	notice  string
	playing bool
	index   int
	volume  float64
}

// NewNull creates a silent player.
func NewNull() *Null { return &Null{volume: DefaultVolume} }

func (n *Null) Play() error {
	if n.notice != "" {
		return ErrAudioUnavailable
	}
	n.playing = true
	return nil
}

func (n *Null) Pause() { n.playing = false }

func (n *Null) Toggle() error {
	if n.playing {
		n.Pause()
		return nil
	}
	return n.Play()
}

func (n *Null) Playing() bool {
	return n.playing
}

func (n *Null) Next() {
	n.Select(n.index + 1)
}

func (n *Null) Prev() {
	n.Select(n.index - 1)
}

func (n *Null) Select(i int) {
	l := len(Playlist)
	n.index = ((i % l) + l) % l
}

func (n *Null) Track() (Track, int) {
	return Playlist[n.index], n.index
}

func (n *Null) SetVolume(v float64) {
	n.volume = clampVolume(v)
}

func (n *Null) Volume() float64 {
	return n.volume
}

func (n *Null) Levels(k int) []float64 {
	return make([]float64, k)
}

func (n *Null) Effect(core.EventKind) {}

func (n *Null) Halt() {}

func (n *Null) Notice() string {
	return n.notice
}

func (n *Null) Close() {}

func (n *Null) Progress() (time.Duration, time.Duration) {
	return 0, Playlist[n.index].Duration()
}
