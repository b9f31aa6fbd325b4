package neonrider

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/retrowave-arcade/internal/arcade"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// Visual characters for rendering
const (
	RingFar      = '·'
	RingNear     = '∘'
	SpokeChar    = '.'
	SphereChar   = '●'
	BarrierChar  = 'o'
	FragmentChar = '◆'
	SparkChar    = '*'
	EmberChar    = '·'
	GlowChar     = '•'
	BoostGlow    = '▼'
	BarFull      = '█'
	BarEmpty     = '░'
)

// cubeFaces are drawn in turn as a cube rotates.
var cubeFaces = []rune{'■', '◆', '□', '◇'}

// Ship sprites, level and banked. Banking left means moving right.
var (
	shipLevel     = []rune("╱▲╲")
	shipBankLeft  = []rune("─▲╲")
	shipBankRight = []rune("╱▲─")
)

// aspect compensates for terminal cells being about twice as tall as wide.
const aspect = 2.0

// healthBarWidth is the width of the HUD health bar in cells.
const healthBarWidth = 10

// view is the projection for one frame.
type view struct {
	cx, cy float64
	scale  float64
	camera core.Vec3
}

func (g *Game) newView(dst *core.Screen) view {
	h := dst.Height() - 1 // row 0 is the HUD
	return view{
		cx:     float64(dst.Width()) / 2,
		cy:     1 + float64(h)/2,
		scale:  g.cfg.Tunnel.Focal * float64(h) / 24,
		camera: core.Vec3{X: g.shake.X, Y: g.shake.Y, Z: g.cfg.Tunnel.Camera},
	}
}

// project maps a world point to a screen cell. ok is false for points at
// or behind the camera.
func (v view) project(p core.Vec3) (x, y int, depth float64, ok bool) {
	depth = v.camera.Z - p.Z
	if depth < 0.1 {
		return 0, 0, depth, false
	}
	k := v.scale / depth
	x = int(math.Round(v.cx + (p.X-v.camera.X)*k*aspect))
	y = int(math.Round(v.cy - (p.Y-v.camera.Y)*k))
	return x, y, depth, true
}

// size returns the projected half extents of a world radius at depth.
func (v view) size(radius, depth float64) (rx, ry int) {
	k := v.scale / depth
	return int(radius * k * aspect), int(radius * k)
}

// Render draws the current frame: tunnel, entities far to near, effects,
// the ship and the HUD.
func (g *Game) Render(dst *core.Screen) {
	v := g.newView(dst)

	g.renderTunnel(dst, v)
	g.renderEntities(dst, v)
	g.renderParticles(dst, v)
	g.renderShip(dst, v)
	g.renderPopups(dst, v)
	g.renderHUD(dst)
}

func (g *Game) renderTunnel(dst *core.Screen, v view) {
	t := g.cfg.Tunnel
	if t.Rings <= 0 || t.RingSpacing <= 0 {
		return
	}
	offset := math.Mod(g.travel, t.RingSpacing)
	far := t.Camera - float64(t.Rings)*t.RingSpacing

	// Rings scroll toward the camera as the ship flies.
	for i := t.Rings; i >= 1; i-- {
		z := t.Camera - float64(i)*t.RingSpacing + offset
		depth := t.Camera - z
		glyph := RingNear
		if depth > float64(t.Rings)*t.RingSpacing/2 {
			glyph = RingFar
		}
		rx, _ := v.size(t.Radius, depth)
		steps := core.Max(16, rx*4)
		for s := 0; s < steps; s++ {
			a := float64(s) / float64(steps) * math.Pi * 2
			p := core.Vec3{X: math.Cos(a) * t.Radius, Y: math.Sin(a) * t.Radius, Z: z}
			if x, y, _, ok := v.project(p); ok && y > 0 {
				dst.SetCell(x, y, glyph, g.palette.Secondary1)
			}
		}
	}

	// Spokes run along the wall and turn with the tunnel.
	for k := 0; k < t.Spokes; k++ {
		a := float64(k)/float64(t.Spokes)*math.Pi*2 + g.spin
		for z := far; z < t.Camera-1; z++ {
			p := core.Vec3{X: math.Cos(a) * t.Radius, Y: math.Sin(a) * t.Radius, Z: z}
			if x, y, _, ok := v.project(p); ok && y > 0 {
				dst.SetCell(x, y, SpokeChar, g.palette.PrimaryMedium)
			}
		}
	}
}

func (g *Game) renderEntities(dst *core.Screen, v view) {
	all := make([]*arcade.Body, 0, len(g.obstacles)+len(g.collectibles))
	for i := range g.obstacles {
		all = append(all, &g.obstacles[i])
	}
	for i := range g.collectibles {
		all = append(all, &g.collectibles[i])
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Pos.Z < all[j].Pos.Z })

	for _, b := range all {
		x, y, depth, ok := v.project(b.Pos)
		if !ok {
			continue
		}
		switch b.Kind {
		case KindBarrier:
			g.drawRing(dst, v, b.Pos, g.cfg.Collision.Barrier, b.Color)
		case KindSphere:
			rx, ry := v.size(0.4, depth)
			blob(dst, x, y, rx, ry, SphereChar, b.Color)
		case KindCube:
			face := cubeFaces[int(math.Abs(b.Rot.Y)*2/math.Pi)%len(cubeFaces)]
			rx, ry := v.size(0.3, depth)
			blob(dst, x, y, rx, ry, face, b.Color)
		case KindCollectible:
			rx, ry := v.size(0.3, depth)
			blob(dst, x, y, rx, ry, FragmentChar, b.Color)
		}
	}
}

// drawRing draws a barrier ring facing the ship.
func (g *Game) drawRing(dst *core.Screen, v view, center core.Vec3, radius float64, c core.Color) {
	_, _, depth, ok := v.project(center)
	if !ok {
		return
	}
	rx, _ := v.size(radius, depth)
	steps := core.Max(8, rx*4)
	for s := 0; s < steps; s++ {
		a := float64(s) / float64(steps) * math.Pi * 2
		p := center.Add(core.Vec3{X: math.Cos(a) * radius, Y: math.Sin(a) * radius})
		if x, y, _, ok := v.project(p); ok && y > 0 {
			dst.SetCell(x, y, BarrierChar, c)
		}
	}
}

// blob fills an ellipse with half extents rx, ry; small ones are one cell.
func blob(dst *core.Screen, cx, cy, rx, ry int, glyph rune, c core.Color) {
	if rx <= 0 && ry <= 0 {
		if cy > 0 {
			dst.SetCell(cx, cy, glyph, c)
		}
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / float64(rx+1)
			ny := float64(dy) / float64(ry+1)
			if nx*nx+ny*ny <= 1 && cy+dy > 0 {
				dst.SetCell(cx+dx, cy+dy, glyph, c)
			}
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen, v view) {
	for _, p := range g.particles {
		x, y, _, ok := v.project(p.Pos)
		if !ok || y <= 0 {
			continue
		}
		glyph := EmberChar
		if p.life > 0.5 {
			glyph = SparkChar
		}
		dst.SetCell(x, y, glyph, p.Color)
	}
}

func (g *Game) renderShip(dst *core.Screen, v view) {
	x, y, _, ok := v.project(g.ship)
	if !ok {
		return
	}
	sprite := shipLevel
	switch {
	case g.bank < -0.02:
		sprite = shipBankLeft
	case g.bank > 0.02:
		sprite = shipBankRight
	}
	for i, r := range sprite {
		dst.SetCell(x-1+i, y, r, g.palette.Highlight)
	}

	// The engine glow pulses, and flares while boosting.
	switch {
	case g.boosted:
		dst.SetCell(x, y+1, BoostGlow, g.palette.Accent)
	case (g.frames/8)%2 == 0:
		dst.SetCell(x, y+1, GlowChar, g.palette.Accent)
	default:
		dst.SetCell(x, y+1, EmberChar, g.palette.Accent)
	}
}

func (g *Game) renderPopups(dst *core.Screen, v view) {
	for _, p := range g.popups {
		progress := 1 - float64(p.left)/float64(core.Max(p.total, 1))
		pos := p.pos.Add(core.Vec3{Y: progress, Z: -0.5})
		x, y, _, ok := v.project(pos)
		if !ok || y <= 0 {
			continue
		}
		dst.DrawTextColor(x-len(p.text)/2, y, p.text, g.palette.Secondary2)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	text := g.palette.Text
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", g.ledger.Score()), text)

	filled := int(g.ledger.Fraction() * healthBarWidth)
	x := dst.Width()/2 - healthBarWidth/2
	dst.DrawTextColor(x-3, 0, "HP", text)
	for i := 0; i < healthBarWidth; i++ {
		if i < filled {
			dst.SetCell(x+i, 0, BarFull, g.palette.Accent)
		} else {
			dst.SetCell(x+i, 0, BarEmpty, g.palette.PrimaryMedium)
		}
	}

	status, c := "BOOST READY", g.palette.Highlight
	switch {
	case g.boosted:
		status, c = "BOOST!", g.palette.Accent
	case g.timers.Active(timerCooldown):
		status, c = "RECHARGING", g.palette.Secondary1
	}
	dst.DrawTextColor(dst.Width()-len(status)-1, 0, status, c)
}
