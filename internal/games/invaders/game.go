// Package invaders implements a Space Invaders clone.
// A formation of enemies sweeps side to side and steps down at the edges
// while the player's cannon shoots them from the bottom row.
package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/config"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

// hudRows is the number of rows reserved for the HUD at the top.
const hudRows = 1

// Game implements the Space Invaders game logic.
type Game struct {
	cfg        config.InvadersConfig
	loaded     bool
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	palette    core.Palette

	playerX float64
	playerY float64
	ledger  *arcade.Ledger
	level   int
	speed   float64 // enemy speed, grows per wave
	dir     float64 // +1 right, -1 left
	frames  int
	over    bool

	enemies      []arcade.Body // Kind is the grid row
	bullet       arcade.Body   // the player's single shot
	enemyBullets []arcade.Body
	enemyFire    arcade.Spawner
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

// New creates a new Space Invaders game instance. The YAML config and the
// difficulty preset are loaded on the first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game from an explicit configuration.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

func (g *Game) loadConfig() {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.loaded = true
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Controls returns the controls line for the title screen.
func (g *Game) Controls() string {
	return "Left/Right move  SPACE fire  P pause"
}

// HoldWindow returns how long a key press keeps the cannon moving.
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
	g.runtime = runtime
	g.palette = runtime.Palette
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.playerX = float64(runtime.ScreenW-g.cfg.Player.Width) / 2
	g.playerY = float64(runtime.ScreenH - g.cfg.Player.Bottom - 1)
	g.ledger = arcade.NewLedger(g.cfg.Player.Lives)
	g.level = 1
	g.speed = g.cfg.Motion.EnemySpeed
	g.dir = 1
	g.frames = 0
	g.over = false

	g.bullet = arcade.Body{}
	g.enemyBullets = g.enemyBullets[:0]
	g.createEnemies()
}

// createEnemies builds a fresh formation centered horizontally.
func (g *Game) createEnemies() {
	grid := g.cfg.Grid
	width := grid.Cols*(grid.Width+grid.PadX) - grid.PadX
	left := float64(core.Max(grid.Margin, (g.runtime.ScreenW-width)/2))

	g.enemies = g.enemies[:0]
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			e := arcade.Body{
				Kind: r,
				Tint: core.Min(r, 2),
				Pos: core.Vec3{
					X: left + float64(c*(grid.Width+grid.PadX)),
					Y: float64(grid.Top + r*(grid.Height+grid.PadY)),
				},
				Alive: true,
			}
			e.Recolor(g.palette)
			g.enemies = append(g.enemies, e)
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.frames++

	var events []core.Event
	events = g.movePlayer(in, events)
	events = g.moveBullet(events)
	events = g.moveEnemies(events)
	if !g.over {
		events = g.moveEnemyBullets(events)
	}

	g.enemies = arcade.Sweep(g.enemies, alive)
	g.enemyBullets = arcade.Sweep(g.enemyBullets, alive)

	return core.StepResult{State: g.State(), Events: events}
}

func alive(b *arcade.Body) bool { return b.Alive }

// movePlayer moves the cannon and fires when no shot is in flight.
func (g *Game) movePlayer(in core.InputFrame, events []core.Event) []core.Event {
	dx := in.Axis(core.ActionLeft, core.ActionRight) * g.cfg.Motion.PlayerSpeed
	maxX := float64(g.runtime.ScreenW - g.cfg.Player.Width)
	g.playerX = core.ClampF(g.playerX+dx, 0, maxX)

	if in.Holding(core.ActionFire) && !g.bullet.Alive {
		g.bullet = arcade.Body{
			Pos:   core.Vec3{X: g.playerX + float64(g.cfg.Player.Width/2), Y: g.playerY - 1},
			Vel:   core.Vec3{Y: -g.cfg.Motion.BulletSpeed},
			Alive: true,
		}
		events = append(events, core.Event{Kind: core.EventShoot})
	}
	return events
}

// moveBullet flies the player's shot and resolves enemy kills.
func (g *Game) moveBullet(events []core.Event) []core.Event {
	if !g.bullet.Alive {
		return events
	}
	g.bullet.Integrate(1)
	if g.bullet.Pos.Y < hudRows {
		g.bullet.Kill()
		return events
	}

	shot := cellRect(g.bullet.Pos, 1, 1)
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || !shot.Intersects(g.enemyRect(e)) {
			continue
		}
		e.Kill()
		g.bullet.Kill()
		g.ledger.Award((g.cfg.Grid.Rows - e.Kind) * g.cfg.Scoring.RowValue)
		events = append(events, core.Event{Kind: core.EventExplode})

		if g.waveCleared() {
			g.level++
			g.speed += g.cfg.Motion.LevelStep
			g.createEnemies()
			events = append(events, core.Event{Kind: core.EventLevelUp})
		}
		break
	}
	return events
}

func (g *Game) waveCleared() bool {
	for i := range g.enemies {
		if g.enemies[i].Alive {
			return false
		}
	}
	return true
}

// moveEnemies sweeps the formation, steps it down at the edges and lets
// each enemy roll for a shot.
func (g *Game) moveEnemies(events []core.Event) []core.Event {
	grid := g.cfg.Grid
	right := float64(g.runtime.ScreenW - grid.Margin)
	left := float64(grid.Margin)

	down := false
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		if e.Pos.X+float64(grid.Width) > right && g.dir > 0 {
			down = true
		} else if e.Pos.X < left && g.dir < 0 {
			down = true
		}
	}
	if down {
		g.dir = -g.dir
	}

	score := g.ledger.Score()
	speed := g.difficulty.Speed(g.speed, score, g.frames)
	g.enemyFire.Rate = g.difficulty.SpawnRate(g.cfg.Fire.Chance*float64(g.level), score, g.frames)

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		if down {
			e.Pos.Y += float64(grid.StepDown)
		}
		e.Pos.X += g.dir * speed

		if e.Pos.Y+float64(grid.Height) > g.playerY {
			g.over = true
			return append(events, core.Event{Kind: core.EventExplode})
		}

		if len(g.enemyBullets) < g.cfg.Fire.MaxEnemyBullets && g.enemyFire.Roll(g.rng) {
			g.enemyBullets = append(g.enemyBullets, arcade.Body{
				Pos:   core.Vec3{X: e.Pos.X + float64(grid.Width/2), Y: e.Pos.Y + float64(grid.Height)},
				Vel:   core.Vec3{Y: g.cfg.Motion.EnemyBulletSpeed},
				Alive: true,
			})
		}
	}
	return events
}

// moveEnemyBullets drops enemy shots and applies hits on the cannon.
func (g *Game) moveEnemyBullets(events []core.Event) []core.Event {
	player := core.RectF{X: g.playerX, Y: g.playerY, W: float64(g.cfg.Player.Width), H: 1}
	bottom := float64(g.runtime.ScreenH)

	for i := range g.enemyBullets {
		b := &g.enemyBullets[i]
		if !b.Alive {
			continue
		}
		b.Integrate(1)
		if b.Pos.Y > bottom {
			b.Kill()
			continue
		}
		if !cellRect(b.Pos, 1, 1).Intersects(player) {
			continue
		}

		b.Kill()
		events = append(events, core.Event{Kind: core.EventHit})
		if g.ledger.Damage(1) {
			g.over = true
			return append(events, core.Event{Kind: core.EventExplode})
		}
	}
	return events
}

func cellRect(p core.Vec3, w, h float64) core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: w, H: h}
}

func (g *Game) enemyRect(e *arcade.Body) core.RectF {
	return cellRect(e.Pos, float64(g.cfg.Grid.Width), float64(g.cfg.Grid.Height))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ledger.Score(),
		GameOver: g.over,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.ledger.Health()
}

// Level returns the current wave number, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// ApplyPalette recolors the formation for a new theme.
func (g *Game) ApplyPalette(p core.Palette) {
	g.palette = p
	for i := range g.enemies {
		g.enemies[i].Recolor(p)
	}
}

// Halt drops every shot in flight.
func (g *Game) Halt() {
	g.bullet.Kill()
	g.enemyBullets = g.enemyBullets[:0]
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
