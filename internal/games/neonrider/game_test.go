package neonrider

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/config"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

var testPalette = core.Palette{
	Name:          "test",
	Highlight:     "#00F0FF",
	Accent:        "#FF41B4",
	Secondary1:    "#A359FF",
	Secondary2:    "#FFDE59",
	PrimaryMedium: "#1A0B35",
	Text:          "#FFFFFF",
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42, Palette: testPalette}
}

// quietGame returns a game that never spawns on its own.
func quietGame() *Game {
	cfg := config.DefaultNeonRiderConfig()
	cfg.Spawning.ObstacleRate = 0
	cfg.Spawning.CollectibleRate = 0
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	return g
}

// obstacleAtShip places a cube that will be on the ship after one step.
func (g *Game) obstacleAtShip(kind int) {
	g.obstacles = append(g.obstacles, arcade.Body{
		Kind:  kind,
		Pos:   g.ship.Sub(core.Vec3{Z: 0.1}),
		Vel:   forward,
		Alive: true,
	})
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != "neonrider" || g.Title() != "Neon Rider" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestResetState(t *testing.T) {
	g := quietGame()
	if g.Health() != 100 {
		t.Errorf("Health() = %d, expected 100", g.Health())
	}
	if st := g.State(); st.Score != 0 || st.GameOver {
		t.Errorf("State() = %+v, expected zero score, running", st)
	}
	if g.Speed() != 0.2 {
		t.Errorf("Speed() = %v, expected 0.2", g.Speed())
	}
}

func TestZeroSpawnRateNeverSpawns(t *testing.T) {
	g := quietGame()
	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		g.Step(in)
	}
	if len(g.obstacles) != 0 || len(g.collectibles) != 0 {
		t.Errorf("entities = %d/%d, expected none with zero spawn rates",
			len(g.obstacles), len(g.collectibles))
	}
}

func TestFourHitsEndTheGame(t *testing.T) {
	g := quietGame()
	in := core.NewInputFrame()

	expected := []int{75, 50, 25, 0}
	for i, health := range expected {
		g.obstacleAtShip(KindCube)
		res := g.Step(in)
		if !hasEvent(res.Events, core.EventHit) {
			t.Fatalf("hit %d: no hit event", i+1)
		}
		if g.Health() != health {
			t.Fatalf("hit %d: Health() = %d, expected %d", i+1, g.Health(), health)
		}
		if res.State.GameOver != (health == 0) {
			t.Fatalf("hit %d: GameOver = %v", i+1, res.State.GameOver)
		}
	}

	last := g.State().Score
	res := g.Step(in)
	if res.State.Score != last || len(res.Events) != 0 {
		t.Error("Step() after game over should change nothing")
	}
}

func TestKillingHitExplodes(t *testing.T) {
	g := quietGame()
	g.ledger.Damage(75)
	g.obstacleAtShip(KindSphere)
	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.EventExplode) {
		t.Error("killing hit should report an explosion")
	}
	if len(g.obstacles) != 0 {
		t.Errorf("obstacles = %d, expected the hazard destroyed", len(g.obstacles))
	}
}

func TestCollectibleScores(t *testing.T) {
	g := quietGame()
	g.collectibles = append(g.collectibles, arcade.Body{
		Kind:  KindCollectible,
		Pos:   g.ship.Sub(core.Vec3{Z: 0.1}),
		Vel:   forward,
		Alive: true,
	})

	res := g.Step(core.NewInputFrame())

	// 10 for the fragment plus floor(0.20005 * 10) for distance.
	if res.State.Score != 12 {
		t.Errorf("Score = %d, expected 12", res.State.Score)
	}
	if !hasEvent(res.Events, core.EventCollect) {
		t.Error("no collect event")
	}
	if len(g.collectibles) != 0 {
		t.Error("collectible should be destroyed")
	}
	if len(g.popups) != 1 || g.popups[0].text != "+10" {
		t.Errorf("popups = %+v, expected one +10", g.popups)
	}
	if len(g.particles) != 8 {
		t.Errorf("particles = %d, expected 8", len(g.particles))
	}
	if g.Health() != 100 {
		t.Error("collecting must not change health")
	}
}

func TestCollisionThresholds(t *testing.T) {
	tests := []struct {
		name   string
		kind   int
		offset float64
		hit    bool
	}{
		{"cube inside", KindCube, 0.55, true},
		{"cube outside", KindCube, 0.7, false},
		{"barrier wide", KindBarrier, 1.4, true},
		{"barrier outside", KindBarrier, 1.6, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := quietGame()
			g.obstacles = append(g.obstacles, arcade.Body{
				Kind:  tc.kind,
				Pos:   core.Vec3{X: tc.offset, Z: g.ship.Z - 0.2},
				Vel:   forward,
				Alive: true,
			})
			g.Step(core.NewInputFrame())
			if hit := g.Health() < 100; hit != tc.hit {
				t.Errorf("hit = %v, expected %v", hit, tc.hit)
			}
		})
	}
}

func TestObstaclesDespawnBehindShip(t *testing.T) {
	g := quietGame()
	g.obstacles = append(g.obstacles, arcade.Body{
		Kind:  KindCube,
		Pos:   core.Vec3{X: 2, Z: 4.9},
		Vel:   forward,
		Alive: true,
	})
	g.Step(core.NewInputFrame())
	if len(g.obstacles) != 0 {
		t.Error("obstacle past z=5 should be removed")
	}
	if g.Health() != 100 {
		t.Error("despawn must not damage the ship")
	}
}

func TestSteeringClamps(t *testing.T) {
	g := quietGame()
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	in.Hold(core.ActionUp)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if g.ship.X != 2.5 || g.ship.Y != 2.5 {
		t.Errorf("ship = %v, expected clamped to 2.5", g.ship)
	}
	if g.bank >= 0 {
		t.Errorf("bank = %v, expected negative while moving right", g.bank)
	}
}

func TestBoostCycle(t *testing.T) {
	g := quietGame()
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	idle := core.NewInputFrame()

	res := g.Step(fire)
	if !hasEvent(res.Events, core.EventBoost) || !g.Boosting() {
		t.Fatal("Fire should start the boost")
	}
	if g.Speed() != 2*g.ramp.Speed() {
		t.Errorf("boosted Speed() = %v, expected twice %v", g.Speed(), g.ramp.Speed())
	}

	// 1000 ms at 60 fps is 60 frames including the first.
	for i := 0; i < 59; i++ {
		g.Step(idle)
	}
	if !g.Boosting() {
		t.Fatal("boost ended early")
	}
	g.Step(idle)
	if g.Boosting() {
		t.Fatal("boost should end after 60 frames")
	}

	if res := g.Step(fire); hasEvent(res.Events, core.EventBoost) {
		t.Error("boost during cooldown")
	}
	for i := 0; i < 180; i++ {
		g.Step(idle)
	}
	if res := g.Step(fire); !hasEvent(res.Events, core.EventBoost) {
		t.Error("boost should be ready after the cooldown")
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	cfg := config.DefaultNeonRiderConfig()
	cfg.Spawning.ObstacleRate = 0.2
	cfg.Spawning.CollectibleRate = 0.2
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	lastScore, lastHealth := 0, g.Health()
	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		g.Step(in)
		if s := g.State().Score; s < lastScore {
			t.Fatalf("frame %d: score decreased %d -> %d", i, lastScore, s)
		}
		if h := g.Health(); h > lastHealth || h < 0 {
			t.Fatalf("frame %d: health %d -> %d", i, lastHealth, h)
		}
		lastScore, lastHealth = g.State().Score, g.Health()
		for _, b := range append(append([]arcade.Body{}, g.obstacles...), g.collectibles...) {
			if !b.Alive {
				t.Fatalf("frame %d: dead entity kept in a live list", i)
			}
		}
	}
}

func TestApplyPaletteRecolors(t *testing.T) {
	g := quietGame()
	g.spawnObstacle()
	g.spawnCollectible()

	next := core.Palette{Accent: "1", Highlight: "2", Secondary1: "3", Secondary2: "4"}
	g.ApplyPalette(next)

	roles := next.Spawnable()
	if g.obstacles[0].Color != roles[g.obstacles[0].Tint] {
		t.Errorf("obstacle color = %q, expected %q", g.obstacles[0].Color, roles[g.obstacles[0].Tint])
	}
	if g.collectibles[0].Color != "4" {
		t.Errorf("collectible color = %q, expected secondary2", g.collectibles[0].Color)
	}
}

func TestHaltStopsEffects(t *testing.T) {
	g := quietGame()
	g.explode(core.Vec3{}, testPalette.Accent, 15)
	g.popups = append(g.popups, popup{text: "+10", left: 60, total: 60})

	g.Halt()

	if len(g.particles) != 0 || len(g.popups) != 0 {
		t.Error("Halt() left effects running")
	}
	if g.timers.Active(timerShake) {
		t.Error("Halt() left the camera shaking")
	}
}

func TestRender(t *testing.T) {
	g := quietGame()
	g.spawnObstacle()
	g.spawnCollectible()
	g.Step(core.NewInputFrame())

	s := core.NewScreen(80, 24)
	g.Render(s)

	hud := s.Row(0)
	if !strings.Contains(hud, "SCORE") || !strings.Contains(hud, "BOOST READY") {
		t.Errorf("HUD = %q", hud)
	}
	if n := strings.Count(hud, string(BarFull)); n != healthBarWidth {
		t.Errorf("health bar = %d cells, expected %d", n, healthBarWidth)
	}
	if !strings.ContainsRune(s.String(), '▲') {
		t.Error("ship not drawn")
	}
}

func TestRenderHealthBarShrinks(t *testing.T) {
	g := quietGame()
	g.obstacleAtShip(KindCube)
	g.Step(core.NewInputFrame())

	s := core.NewScreen(80, 24)
	g.Render(s)
	if n := strings.Count(s.Row(0), string(BarFull)); n != 7 {
		t.Errorf("health bar = %d cells at 75%%, expected 7", n)
	}
}
