package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Track describes one synthesized song of the playlist.
type Track struct {
	Title  string
	Artist string
	BPM    float64
	Root   float64 // root note in Hz
	Chords []int   // semitone offsets from Root, one per bar
	Minor  bool
	Lead   WaveType
	Bars   int
}

// Duration returns the playing time of the track.
func (t Track) Duration() time.Duration {
	beats := float64(t.Bars * 4)
	return time.Duration(beats * 60 / t.BPM * float64(time.Second))
}

// Playlist is the built-in set of tracks.
var Playlist = []Track{
	{Title: "Chill Synthwave", Artist: "Lowtone Music", BPM: 84, Root: 110, Chords: []int{0, -4, 3, -2}, Minor: true, Lead: WaveTriangle, Bars: 32},
	{Title: "Synthwave Dark", Artist: "Lowtone Music", BPM: 96, Root: 98, Chords: []int{0, 0, -4, -2}, Minor: true, Lead: WaveSaw, Bars: 32},
	{Title: "Synthwave Cyberpunk", Artist: "Elysium Sound", BPM: 118, Root: 123.47, Chords: []int{0, 5, -3, 7}, Minor: true, Lead: WaveSquare, Bars: 40},
	{Title: "Voyage", Artist: "Elysium Sound", BPM: 104, Root: 130.81, Chords: []int{0, 7, 9, 5}, Lead: WaveSine, Bars: 40},
}

// Voices reported as visualizer levels.
const (
	voiceKick = iota
	voiceBass
	voicePad
	voiceLead
	voiceHat
	voiceCount
)

// song renders a Track sample by sample. It is a finite streamer whose
// position can be read and moved for the progress bar.
type song struct {
	track  Track
	rate   beep.SampleRate
	pos    int
	total  int
	noise  noise
	levels [voiceCount]float64
}

func newSong(t Track, sr beep.SampleRate) *song {
	return &song{track: t, rate: sr, total: sr.N(t.Duration()), noise: noise{seed: 12345}}
}

func semitone(base float64, n int) float64 {
	return base * math.Pow(2, float64(n)/12)
}

func (s *song) Stream(samples [][2]float64) (n int, ok bool) {
	t := s.track
	third := 4
	if t.Minor {
		third = 3
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		sec := float64(s.pos) / float64(s.rate)
		beat := sec * t.BPM / 60
		beatFrac := beat - math.Floor(beat)
		eighth := beat * 2
		eighthFrac := eighth - math.Floor(eighth)
		sixteenth := int(beat * 4)

		bar := int(beat / 4)
		root := semitone(t.Root, t.Chords[bar%len(t.Chords)])
		chord := [3]float64{root, semitone(root, third), semitone(root, 7)}

		kickEnv := math.Exp(-beatFrac * 14)
		beatSec := beatFrac * 60 / t.BPM
		kick := kickEnv * math.Sin(2*math.Pi*(45+90*kickEnv)*beatSec)

		bassEnv := math.Exp(-eighthFrac * 5)
		bass := bassEnv * wave(WaveSaw, math.Mod(sec*root/2, 1), &s.noise)

		pad := 0.0
		for _, f := range chord {
			pad += math.Sin(2 * math.Pi * f * sec)
		}
		pad /= 3

		leadNote := chord[sixteenth%3] * 2
		leadFrac := beat*4 - math.Floor(beat*4)
		leadEnv := math.Exp(-leadFrac * 6)
		lead := leadEnv * wave(t.Lead, math.Mod(sec*leadNote, 1), &s.noise)

		hat := 0.0
		hatEnv := 0.0
		if int(eighth)%2 == 1 {
			hatEnv = math.Exp(-eighthFrac * 40)
			hat = hatEnv * s.noise.next()
		}

		v := 0.35*kick + 0.22*bass + 0.12*pad + 0.14*lead + 0.06*hat
		samples[i][0] = v
		samples[i][1] = v

		s.levels[voiceKick] = kickEnv
		s.levels[voiceBass] = bassEnv
		s.levels[voicePad] = 0.5 + 0.5*math.Abs(pad)
		s.levels[voiceLead] = leadEnv
		s.levels[voiceHat] = hatEnv
		s.pos++
	}
	return len(samples), true
}

func (s *song) Err() error { return nil }

// position returns elapsed and total play time.
func (s *song) position() (time.Duration, time.Duration) {
	return s.rate.D(s.pos), s.rate.D(s.total)
}

// seek moves to a fraction of the track in [0, 1].
func (s *song) seek(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	s.pos = int(fraction * float64(s.total))
}
