// Package neonrider implements Neon Rider, a tunnel racer.
// The ship flies down a neon tunnel dodging cubes, spheres and barrier
// rings while collecting data fragments. Speed grows every frame and a
// short boost doubles it.
package neonrider

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/config"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// Entity kinds stored in arcade.Body.Kind.
const (
	KindCube = iota
	KindSphere
	KindBarrier
	KindCollectible
)

// obstacleKinds lists the kinds an obstacle spawn picks from.
var obstacleKinds = []int{KindCube, KindSphere, KindBarrier}

// collectibleTint is the gold role in Palette.Spawnable.
const collectibleTint = 3

// Timer names.
const (
	timerBoost    = "boost"
	timerCooldown = "cooldown"
	timerShake    = "shake"
	timerTrail    = "trail"
)

// particle is a short-lived explosion or trail fragment.
type particle struct {
	arcade.Body
	life float64 // 1 when spawned, removed at 0
}

// popup is a floating score label.
type popup struct {
	pos   core.Vec3
	text  string
	left  int
	total int
}

// Game implements the Neon Rider game logic.
type Game struct {
	cfg        config.NeonRiderConfig
	loaded     bool
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	palette    core.Palette

	ship    core.Vec3
	bank    float64 // roll of the ship, radians
	ramp    arcade.SpeedRamp
	speed   float64 // effective speed of the last frame
	travel  float64 // distance flown, scrolls the tunnel
	spin    float64 // tunnel rotation
	ledger  *arcade.Ledger
	timers  arcade.Timers
	shake   core.Vec3 // camera offset while shaking
	frames  int
	over    bool
	boosted bool

	obstacles    []arcade.Body
	collectibles []arcade.Body
	particles    []particle
	popups       []popup

	obstacleSpawner    arcade.Spawner
	collectibleSpawner arcade.Spawner
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Neon Rider game instance. The YAML config and the
// difficulty preset are loaded on the first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game from an explicit configuration.
func NewWithConfig(cfg config.NeonRiderConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func (g *Game) loadConfig() {
	cfg, err := config.LoadNeonRider(configPath)
	if err != nil {
		cfg = config.DefaultNeonRiderConfig()
	}
	config.ApplyNeonRiderPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.loaded = true
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "neonrider"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Rider"
}

// Controls returns the controls line for the title screen.
func (g *Game) Controls() string {
	return "Arrows/WASD steer  SPACE boost  P pause"
}

// HoldWindow returns how long a key press keeps the ship steering.
func (g *Game) HoldWindow() time.Duration {
	if !g.loaded {
		g.loadConfig()
	}
	return g.cfg.Input.HoldWindow()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.loaded {
		g.loadConfig()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.palette = runtime.Palette
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.ship = core.Vec3{Z: g.cfg.Player.Z}
	g.bank = 0
	g.ramp = arcade.NewSpeedRamp(g.cfg.Motion.BaseSpeed, g.cfg.Motion.SpeedIncrement)
	g.speed = g.cfg.Motion.BaseSpeed
	g.travel = 0
	g.spin = 0
	g.ledger = arcade.NewLedger(g.cfg.Scoring.Health)
	g.timers.Clear()
	g.shake = core.Vec3{}
	g.frames = 0
	g.over = false
	g.boosted = false

	g.obstacles = g.obstacles[:0]
	g.collectibles = g.collectibles[:0]
	g.particles = g.particles[:0]
	g.popups = g.popups[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.frames++
	var events []core.Event

	g.advanceTimers()

	if in.Has(core.ActionFire) && g.canBoost() {
		g.startBoost()
		events = append(events, core.Event{Kind: core.EventBoost})
	}

	// Speed grows every frame; boost multiplies the result.
	g.ramp.Advance()
	score := g.ledger.Score()
	g.speed = g.difficulty.Speed(g.ramp.Speed(), score, g.frames)
	if g.boosted {
		g.speed *= g.cfg.Motion.BoostMultiplier
	}

	g.steer(in)
	g.spin += g.speed * g.cfg.Tunnel.Spin
	g.travel += g.speed

	for i := range g.obstacles {
		g.obstacles[i].Integrate(g.speed)
	}
	for i := range g.collectibles {
		g.collectibles[i].Integrate(g.speed)
	}

	g.obstacleSpawner.Rate = g.difficulty.SpawnRate(g.cfg.Spawning.ObstacleRate, score, g.frames)
	g.collectibleSpawner.Rate = g.difficulty.SpawnRate(g.cfg.Spawning.CollectibleRate, score, g.frames)
	if g.obstacleSpawner.Roll(g.rng) {
		g.spawnObstacle()
	}
	if g.collectibleSpawner.Roll(g.rng) {
		g.spawnCollectible()
	}

	events = g.collideObstacles(events)
	if !g.over {
		events = g.collideCollectibles(events)
		g.ledger.Award(int(math.Floor(g.speed * g.cfg.Scoring.DistanceFactor)))
	}

	g.updateEffects()
	g.sweep()

	return core.StepResult{State: g.State(), Events: events}
}

// steer moves the ship by the held axes and eases its bank angle.
func (g *Game) steer(in core.InputFrame) {
	moveX := in.Axis(core.ActionLeft, core.ActionRight) * g.cfg.Player.Move
	moveY := in.Axis(core.ActionDown, core.ActionUp) * g.cfg.Player.Move
	bound := g.cfg.Player.Bound

	g.ship.X = core.ClampF(g.ship.X+moveX, -bound, bound)
	g.ship.Y = core.ClampF(g.ship.Y+moveY, -bound, bound)

	target := -moveX * g.cfg.Player.Bank
	g.bank += (target - g.bank) * g.cfg.Player.BankEase
}

func (g *Game) canBoost() bool {
	return !g.boosted && !g.timers.Active(timerCooldown)
}

func (g *Game) startBoost() {
	g.boosted = true
	g.timers.Set(timerBoost, g.ticks(g.cfg.Motion.BoostMS))
	g.timers.Set(timerTrail, g.ticks(g.cfg.Effects.TrailMS))
	g.spawnTrail()
}

// advanceTimers counts down every timer and handles the ones that expired.
func (g *Game) advanceTimers() {
	for _, name := range g.timers.Advance() {
		switch name {
		case timerBoost:
			g.boosted = false
			g.timers.Stop(timerTrail)
			g.timers.Set(timerCooldown, g.ticks(g.cfg.Motion.CooldownMS))
		case timerTrail:
			if g.boosted {
				g.spawnTrail()
				g.timers.Set(timerTrail, g.ticks(g.cfg.Effects.TrailMS))
			}
		}
	}
}

// ticks converts milliseconds to frames at the session tick rate.
func (g *Game) ticks(ms int) int {
	return arcade.Ticks(time.Duration(ms)*time.Millisecond, g.runtime.TickRate)
}

func (g *Game) sweep() {
	g.obstacles = arcade.Sweep(g.obstacles, alive)
	g.collectibles = arcade.Sweep(g.collectibles, alive)
	g.particles = arcade.Sweep(g.particles, func(p *particle) bool { return p.Alive })
	g.popups = arcade.Sweep(g.popups, func(p *popup) bool { return p.left > 0 })
}

func alive(b *arcade.Body) bool { return b.Alive }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ledger.Score(),
		GameOver: g.over,
	}
}

// Health returns the ship's health.
func (g *Game) Health() int {
	return g.ledger.Health()
}

// Boosting reports whether the boost is active.
func (g *Game) Boosting() bool {
	return g.boosted
}

// Speed returns the effective speed of the last frame.
func (g *Game) Speed() float64 {
	return g.speed
}

// ApplyPalette recolors the live entities for a new theme.
func (g *Game) ApplyPalette(p core.Palette) {
	g.palette = p
	for i := range g.obstacles {
		g.obstacles[i].Recolor(p)
	}
	for i := range g.collectibles {
		g.collectibles[i].Recolor(p)
	}
}

// Halt stops every in-flight effect.
func (g *Game) Halt() {
	g.particles = g.particles[:0]
	g.popups = g.popups[:0]
	g.timers.Stop(timerShake)
	g.timers.Stop(timerTrail)
	g.shake = core.Vec3{}
}

func init() {
	registry.Register("neonrider", func() registry.Game {
		return New()
	})
}
