package arcade

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func TestSpawnerRoll(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		roll     float64
		expected bool
	}{
		{"below rate", 0.02, 0.01, true},
		{"at rate", 0.02, 0.02, false},
		{"above rate", 0.02, 0.5, false},
		{"zero rate", 0, 0, false},
		{"negative rate", -1, 0, false},
		{"certain", 1, 0.999, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Spawner{Rate: tc.rate}.Roll(fixedRand(tc.roll))
			if got != tc.expected {
				t.Errorf("Roll() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpawnerZeroRateNeverSpawns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := Spawner{Rate: 0}
	for i := 0; i < 10000; i++ {
		if s.Roll(rng) {
			t.Fatalf("Roll() spawned on frame %d with rate 0", i)
		}
	}
}

func TestBodyIntegrate(t *testing.T) {
	b := Body{
		Pos:  core.Vec3{X: 1, Y: 0, Z: -50},
		Vel:  core.Vec3{Z: 1},
		Spin: core.Vec3{X: 0.5},
	}
	b.Integrate(0.25)

	if b.Pos != (core.Vec3{X: 1, Y: 0, Z: -49.75}) {
		t.Errorf("Pos = %v, expected {1 0 -49.75}", b.Pos)
	}
	if b.Rot.X != 0.5 {
		t.Errorf("Rot.X = %v, expected 0.5", b.Rot.X)
	}
}

func TestBodyRecolor(t *testing.T) {
	p := core.Palette{Accent: "a", Highlight: "h", Secondary1: "s1", Secondary2: "s2"}
	tests := []struct {
		tint     int
		expected core.Color
	}{
		{0, "a"},
		{3, "s2"},
		{5, "h"},
		{-1, "s2"},
	}
	for _, tc := range tests {
		b := Body{Tint: tc.tint}
		b.Recolor(p)
		if b.Color != tc.expected {
			t.Errorf("Recolor() tint %d = %q, expected %q", tc.tint, b.Color, tc.expected)
		}
	}
}

func TestSweep(t *testing.T) {
	list := []Body{
		{Kind: 1, Alive: true},
		{Kind: 2, Alive: false},
		{Kind: 3, Alive: true},
		{Kind: 4, Alive: false},
	}

	list = Sweep(list, func(b *Body) bool { return b.Alive })

	if len(list) != 2 {
		t.Fatalf("len = %d, expected 2", len(list))
	}
	if list[0].Kind != 1 || list[1].Kind != 3 {
		t.Errorf("Sweep() order = %d,%d, expected 1,3", list[0].Kind, list[1].Kind)
	}
	for _, b := range list {
		if !b.Alive {
			t.Error("Sweep() kept a dead body")
		}
	}
}

func TestSpeedRamp(t *testing.T) {
	r := NewSpeedRamp(0.25, 0.5)
	r.Advance()
	r.Advance()
	if r.Speed() != 1.25 {
		t.Errorf("Speed() = %v, expected 1.25", r.Speed())
	}
	r.Reset()
	if r.Speed() != 0.25 {
		t.Errorf("Speed() after Reset = %v, expected 0.25", r.Speed())
	}
}

func TestLedgerFourHits(t *testing.T) {
	l := NewLedger(100)
	var died []bool
	for i := 0; i < 4; i++ {
		died = append(died, l.Damage(25))
	}

	if l.Health() != 0 || !l.Dead() {
		t.Errorf("Health() = %d, expected 0 and dead", l.Health())
	}
	if died[0] || died[1] || died[2] || !died[3] {
		t.Errorf("Damage() results = %v, expected only the fourth hit to kill", died)
	}
	if l.Damage(25) {
		t.Error("Damage() after death reported a second kill")
	}
}

func TestLedgerMonotonic(t *testing.T) {
	l := NewLedger(3)
	l.Award(10)
	l.Award(-5)
	l.Award(0)
	if l.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", l.Score())
	}

	l.Damage(-2)
	if l.Health() != 3 {
		t.Errorf("negative damage healed: Health() = %d", l.Health())
	}
	l.Damage(5)
	if l.Health() != 0 {
		t.Errorf("Health() = %d, expected clamp at 0", l.Health())
	}

	l.Reset()
	if l.Score() != 0 || l.Health() != 3 {
		t.Errorf("Reset() = score %d health %d, expected 0 and 3", l.Score(), l.Health())
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected int
	}{
		{time.Second, 60, 60},
		{300 * time.Millisecond, 60, 18},
		{50 * time.Millisecond, 60, 3},
		{time.Millisecond, 60, 1},
		{0, 60, 0},
		{time.Second, 0, 0},
	}

	for _, tc := range tests {
		if got := Ticks(tc.d, tc.rate); got != tc.expected {
			t.Errorf("Ticks(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}

func TestTimers(t *testing.T) {
	var tm Timers
	tm.Set("boost", 2)
	tm.Set("shake", 1)

	if expired := tm.Advance(); len(expired) != 1 || expired[0] != "shake" {
		t.Errorf("first Advance() = %v, expected [shake]", expired)
	}
	if !tm.Active("boost") || tm.Remaining("boost") != 1 {
		t.Errorf("boost remaining = %d, expected 1", tm.Remaining("boost"))
	}
	if expired := tm.Advance(); len(expired) != 1 || expired[0] != "boost" {
		t.Errorf("second Advance() = %v, expected [boost]", expired)
	}

	tm.Set("trail", 5)
	tm.Clear()
	if tm.Len() != 0 || len(tm.Advance()) != 0 {
		t.Error("Clear() should cancel every timer")
	}

	tm.Set("x", 0)
	if tm.Active("x") {
		t.Error("Set(0) should not start a timer")
	}
}
