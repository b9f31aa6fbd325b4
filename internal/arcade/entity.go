package arcade

import "github.com/vovakirdan/retrowave-arcade/internal/core"

// Rand is the random source used for spawn rolls. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner rolls once per frame for one entity category.
type Spawner struct {
	Rate float64 // probability of a spawn per frame
}

// Roll reports whether a new entity should be spawned this frame.
// A rate of zero or less never spawns.
func (s Spawner) Roll(rng Rand) bool {
	if s.Rate <= 0 {
		return false
	}
	return rng.Float64() < s.Rate
}

// Body is the transient state common to every spawned entity.
type Body struct {
	Pos   core.Vec3
	Vel   core.Vec3
	Rot   core.Vec3
	Spin  core.Vec3
	Kind  int
	Tint  int // index into Palette.Spawnable
	Color core.Color
	Alive bool
}

// Recolor sets the body's color from its tint slot in p.
func (b *Body) Recolor(p core.Palette) {
	roles := p.Spawnable()
	b.Color = roles[((b.Tint%len(roles))+len(roles))%len(roles)]
}

// Integrate advances the body by its velocity scaled by speed and rotates
// it by its spin.
func (b *Body) Integrate(speed float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(speed))
	b.Rot = b.Rot.Add(b.Spin)
}

// Kill marks the body dead. It is removed by the next Sweep.
func (b *Body) Kill() {
	b.Alive = false
}

// Sweep removes dead entities from list in place and returns the shortened
// slice. The order of live entities is preserved.
func Sweep[T any](list []T, alive func(*T) bool) []T {
	n := 0
	for i := range list {
		if alive(&list[i]) {
			list[n] = list[i]
			n++
		}
	}
	var zero T
	for i := n; i < len(list); i++ {
		list[i] = zero
	}
	return list[:n]
}

// SpeedRamp is a frame speed that grows by a fixed increment every frame.
type SpeedRamp struct {
	Base      float64
	Increment float64
	current   float64
}

// NewSpeedRamp creates a ramp starting at base.
func NewSpeedRamp(base, increment float64) SpeedRamp {
	return SpeedRamp{Base: base, Increment: increment, current: base}
}

// Speed returns the current frame speed.
func (r *SpeedRamp) Speed() float64 {
	return r.current
}

// Advance grows the speed by one increment and returns the new value.
func (r *SpeedRamp) Advance() float64 {
	r.current += r.Increment
	return r.current
}

// Reset restores the base speed.
func (r *SpeedRamp) Reset() {
	r.current = r.Base
}
