package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// noise is a tiny LCG so generators stay deterministic and allocation free.
type noise struct{ seed uint32 }

func (n *noise) next() float64 {
	n.seed = n.seed*1664525 + 1013904223
	return float64(n.seed)/float64(math.MaxUint32)*2 - 1
}

// wave evaluates a waveform at phase in [0, 1).
func wave(w WaveType, phase float64, n *noise) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveNoise:
		return n.next()
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator is a fixed-length tone with an optional linear pitch sweep.
type oscillator struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	phase    float64
	pos      int
	length   int
	noise    noise
}

// NewOscillator creates a tone that sweeps from one frequency to another.
func NewOscillator(from, to float64, d time.Duration, w WaveType, sr beep.SampleRate) beep.Streamer {
	return &oscillator{from: from, to: to, wave: w, rate: sr, length: sr.N(d), noise: noise{seed: 22695477}}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}
		v := wave(o.wave, o.phase, &o.noise)
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(o.pos) / float64(o.length)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and exponential release to a stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

// NewEnvelope shapes s over d with the given attack time.
func NewEnvelope(s beep.Streamer, d, attack time.Duration, sr beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: sr.N(attack), total: sr.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		} else if e.total > e.attack {
			rel := float64(e.pos-e.attack) / float64(e.total-e.attack)
			vol = math.Exp(-4 * rel)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero
// is expressed as silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// tone is an oscillator shaped by an envelope.
func tone(from, to float64, d time.Duration, w WaveType, sr beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(from, to, d, w, sr), d, 5*time.Millisecond, sr)
}
