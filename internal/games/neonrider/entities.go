package neonrider

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// forward is the velocity of everything flying toward the ship.
var forward = core.Vec3{Z: 1}

// spawnPoint picks a random point on the spawn plane inside the tunnel.
func (g *Game) spawnPoint() core.Vec3 {
	angle := g.rng.Float64() * math.Pi * 2
	radius := g.rng.Float64() * g.cfg.Spawning.Radius
	return core.Vec3{
		X: math.Cos(angle) * radius,
		Y: math.Sin(angle) * radius,
		Z: g.cfg.Spawning.SpawnZ,
	}
}

func (g *Game) spawnObstacle() {
	kind := obstacleKinds[g.rng.Intn(len(obstacleKinds))]
	b := arcade.Body{
		Kind:  kind,
		Tint:  g.rng.Intn(len(g.palette.Spawnable())),
		Pos:   g.spawnPoint(),
		Vel:   forward,
		Alive: true,
		Rot: core.Vec3{
			X: g.rng.Float64() * math.Pi,
			Y: g.rng.Float64() * math.Pi,
		},
		Spin: core.Vec3{
			X: g.rng.Float64() * g.cfg.Spawning.MaxSpin,
			Y: g.rng.Float64() * g.cfg.Spawning.MaxSpin,
			Z: g.rng.Float64() * g.cfg.Spawning.MaxSpin,
		},
	}
	b.Recolor(g.palette)
	g.obstacles = append(g.obstacles, b)
}

func (g *Game) spawnCollectible() {
	b := arcade.Body{
		Kind:  KindCollectible,
		Tint:  collectibleTint,
		Pos:   g.spawnPoint(),
		Vel:   forward,
		Spin:  core.Vec3{X: 0.02, Y: 0.03, Z: 0.01},
		Alive: true,
	}
	b.Recolor(g.palette)
	g.collectibles = append(g.collectibles, b)
}

// threshold returns the hit distance for an entity kind.
func (g *Game) threshold(kind int) float64 {
	switch kind {
	case KindBarrier:
		return g.cfg.Collision.Barrier
	case KindCollectible:
		return g.cfg.Collision.Collectible
	default:
		return g.cfg.Collision.Obstacle
	}
}

// collideObstacles despawns obstacles behind the camera and applies hits.
// The killing hit ends the game and stops processing.
func (g *Game) collideObstacles(events []core.Event) []core.Event {
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if !o.Alive {
			continue
		}
		if o.Pos.Z > g.cfg.Spawning.DespawnZ {
			o.Kill()
			continue
		}
		if g.ship.Distance(o.Pos) >= g.threshold(o.Kind) {
			continue
		}

		o.Kill()
		g.explode(o.Pos, o.Color, g.cfg.Effects.ExplosionParticles)
		events = append(events, core.Event{Kind: core.EventHit})
		if g.ledger.Damage(g.cfg.Scoring.HitDamage) {
			g.over = true
			events = append(events, core.Event{Kind: core.EventExplode})
			return events
		}
	}
	return events
}

func (g *Game) collideCollectibles(events []core.Event) []core.Event {
	for i := range g.collectibles {
		c := &g.collectibles[i]
		if !c.Alive {
			continue
		}
		if c.Pos.Z > g.cfg.Spawning.DespawnZ {
			c.Kill()
			continue
		}
		if g.ship.Distance(c.Pos) >= g.threshold(KindCollectible) {
			continue
		}

		c.Kill()
		value := g.cfg.Scoring.CollectibleValue
		g.ledger.Award(value)
		g.explode(c.Pos, c.Color, g.cfg.Effects.CollectParticles)
		g.popups = append(g.popups, popup{
			pos:   c.Pos,
			text:  fmt.Sprintf("+%d", value),
			left:  g.ticks(g.cfg.Effects.PopupMS),
			total: g.ticks(g.cfg.Effects.PopupMS),
		})
		events = append(events, core.Event{Kind: core.EventCollect})
	}
	return events
}

// explode scatters count particles from pos and shakes the camera.
func (g *Game) explode(pos core.Vec3, c core.Color, count int) {
	s := g.cfg.Effects.ParticleSpeed
	for i := 0; i < count; i++ {
		g.particles = append(g.particles, particle{
			Body: arcade.Body{
				Pos: pos,
				Vel: core.Vec3{
					X: (g.rng.Float64() - 0.5) * s,
					Y: (g.rng.Float64() - 0.5) * s,
					Z: (g.rng.Float64() - 0.5) * s,
				},
				Color: c,
				Alive: true,
			},
			life: 1,
		})
	}
	g.timers.Set(timerShake, g.ticks(g.cfg.Effects.ShakeMS))
}

// spawnTrail drops one boost trail particle just behind the ship.
func (g *Game) spawnTrail() {
	g.particles = append(g.particles, particle{
		Body: arcade.Body{
			Pos:   g.ship.Add(core.Vec3{Z: 0.3}),
			Vel:   core.Vec3{Z: 0.05},
			Color: g.palette.Highlight,
			Alive: true,
		},
		life: 1,
	})
}

// updateEffects ages particles and popups and moves the shaking camera.
func (g *Game) updateEffects() {
	for i := range g.particles {
		p := &g.particles[i]
		p.Integrate(1)
		p.life -= g.cfg.Effects.ParticleDecay
		if p.life <= 0 {
			p.Kill()
		}
	}
	for i := range g.popups {
		g.popups[i].left--
	}

	if g.timers.Active(timerShake) {
		k := g.cfg.Effects.ShakeIntensity
		g.shake = core.Vec3{
			X: (g.rng.Float64() - 0.5) * k,
			Y: (g.rng.Float64() - 0.5) * k,
		}
	} else {
		g.shake = core.Vec3{}
	}
}
