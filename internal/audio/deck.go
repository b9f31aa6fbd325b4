package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// DefaultVolume is the music volume when nothing is saved.
const DefaultVolume = 0.5

// effectGain scales one-shot effects relative to the music volume.
const effectGain = 0.8

// Deck is the music player and effect mixer. It is itself a beep.Streamer:
// the speaker pulls samples from it on its own goroutine, so every method
// takes the deck lock.
type Deck struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	tracks  []Track
	index   int
	song    *song
	music   *beep.Ctrl
	gain    *effects.Volume
	sfx     *beep.Mixer
	volume  float64
	buf     [][2]float64
	onTrack func(Track)
}

// NewDeck creates a paused deck on the first track of tracks.
func NewDeck(sr beep.SampleRate, tracks []Track, volume float64) *Deck {
	if len(tracks) == 0 {
		tracks = Playlist
	}
	d := &Deck{
		rate:   sr,
		tracks: tracks,
		sfx:    &beep.Mixer{},
		volume: clampVolume(volume),
	}
	d.load(0)
	return d
}

func clampVolume(v float64) float64 {
	return core.ClampF(v, 0, 1)
}

// load switches to track i. Callers hold the lock.
func (d *Deck) load(i int) {
	n := len(d.tracks)
	d.index = ((i % n) + n) % n
	paused := true
	if d.music != nil {
		paused = d.music.Paused
	}
	d.song = newSong(d.tracks[d.index], d.rate)
	d.gain = newVolume(d.song, d.volume)
	d.music = &beep.Ctrl{Streamer: d.gain, Paused: paused}
	if d.onTrack != nil {
		d.onTrack(d.tracks[d.index])
	}
}

// Stream implements beep.Streamer.
func (d *Deck) Stream(samples [][2]float64) (n int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range samples {
		samples[i] = [2]float64{}
	}

	filled := 0
	for filled < len(samples) {
		m, more := d.music.Stream(samples[filled:])
		filled += m
		if !more {
			// The track ended: continue with the next one.
			d.load(d.index + 1)
			if m == 0 && d.song.total == 0 {
				break
			}
		}
	}

	if cap(d.buf) < len(samples) {
		d.buf = make([][2]float64, len(samples))
	}
	buf := d.buf[:len(samples)]
	d.sfx.Stream(buf)
	for i := range samples {
		samples[i][0] += buf[i][0]
		samples[i][1] += buf[i][1]
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (d *Deck) Err() error { return nil }

// Play starts or continues the music.
func (d *Deck) Play() error {
	d.mu.Lock()
	d.music.Paused = false
	d.mu.Unlock()
	return nil
}

// Pause stops the music. Effects keep playing.
func (d *Deck) Pause() {
	d.mu.Lock()
	d.music.Paused = true
	d.mu.Unlock()
}

// Toggle flips between playing and paused.
func (d *Deck) Toggle() error {
	if d.Playing() {
		d.Pause()
		return nil
	}
	return d.Play()
}

// Playing reports whether music is playing.
func (d *Deck) Playing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.music.Paused
}

// Next skips to the following track.
func (d *Deck) Next() {
	d.mu.Lock()
	d.load(d.index + 1)
	d.mu.Unlock()
}

// Prev goes back to the previous track.
func (d *Deck) Prev() {
	d.mu.Lock()
	d.load(d.index - 1)
	d.mu.Unlock()
}

// Select jumps to a playlist entry.
func (d *Deck) Select(i int) {
	d.mu.Lock()
	d.load(i)
	d.mu.Unlock()
}

// Track returns the current track and its playlist index.
func (d *Deck) Track() (Track, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tracks[d.index], d.index
}

// Tracks returns the playlist.
func (d *Deck) Tracks() []Track {
	return d.tracks
}

// SetVolume sets the music volume in [0, 1].
func (d *Deck) SetVolume(v float64) {
	d.mu.Lock()
	d.volume = clampVolume(v)
	setGain(d.gain, d.volume)
	d.mu.Unlock()
}

// Volume returns the music volume.
func (d *Deck) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}

// Progress returns elapsed and total time of the current track.
func (d *Deck) Progress() (time.Duration, time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.song.position()
}

// Seek moves within the current track, fraction in [0, 1].
func (d *Deck) Seek(fraction float64) {
	d.mu.Lock()
	d.song.seek(fraction)
	d.mu.Unlock()
}

// Levels returns n visualizer bar heights in [0, 1]. All bars are zero
// while paused.
func (d *Deck) Levels(n int) []float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]float64, n)
	if d.music.Paused || n == 0 {
		return out
	}
	for i := range out {
		// Spread the voices across the bars, low voices on the left.
		pos := float64(i) / float64(n) * float64(voiceCount-1)
		lo := int(pos)
		hi := core.Min(lo+1, voiceCount-1)
		frac := pos - float64(lo)
		v := d.song.levels[lo]*(1-frac) + d.song.levels[hi]*frac
		out[i] = core.ClampF(v*d.volume*2, 0, 1)
	}
	return out
}

// OnTrackChange registers a callback run (under the deck lock) whenever a
// new track is loaded.
func (d *Deck) OnTrackChange(fn func(Track)) {
	d.mu.Lock()
	d.onTrack = fn
	d.mu.Unlock()
}

// Effect plays a one-shot sound for a gameplay event.
func (d *Deck) Effect(kind core.EventKind) {
	s := effectFor(kind, d.rate)
	if s == nil {
		return
	}
	d.mu.Lock()
	vol := d.volume * effectGain
	if vol > 0 {
		d.sfx.Add(newVolume(s, vol))
	}
	d.mu.Unlock()
}

// Halt drops every playing effect.
func (d *Deck) Halt() {
	d.mu.Lock()
	d.sfx.Clear()
	d.mu.Unlock()
}

// Notice implements Player. A working deck has nothing to report.
func (d *Deck) Notice() string { return "" }

// Close stops playback.
func (d *Deck) Close() {
	d.Pause()
	d.Halt()
}

// effectFor builds the sound of one gameplay event.
func effectFor(kind core.EventKind, sr beep.SampleRate) beep.Streamer {
	switch kind {
	case core.EventHit:
		return tone(140, 60, 180*time.Millisecond, WaveSaw, sr)
	case core.EventCollect:
		return beep.Mix(
			newVolume(tone(880, 880, 220*time.Millisecond, WaveSine, sr), 0.7),
			newVolume(tone(1760, 1760, 160*time.Millisecond, WaveSine, sr), 0.3),
		)
	case core.EventShoot:
		return newVolume(tone(1200, 400, 90*time.Millisecond, WaveSquare, sr), 0.4)
	case core.EventBoost:
		return newVolume(tone(200, 900, 300*time.Millisecond, WaveNoise, sr), 0.5)
	case core.EventExplode:
		return newVolume(tone(0, 0, 260*time.Millisecond, WaveNoise, sr), 0.6)
	case core.EventLevelUp:
		return beep.Seq(
			tone(660, 660, 120*time.Millisecond, WaveTriangle, sr),
			tone(990, 990, 200*time.Millisecond, WaveTriangle, sr),
		)
	}
	return nil
}
