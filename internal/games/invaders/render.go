package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// Visual characters for rendering
const (
	BulletChar      = '|'
	EnemyBulletChar = '!'
	LifeChar        = '♥'
)

// Ship and enemy sprites. Enemies alternate between two frames as they march.
var (
	cannonSprite = "▄▟█▙▄"
	enemySprites = [][2]string{
		{"▟██▙", "▜██▛"},
		{"/oo\\", "\\oo/"},
		{"<==>", ">==<"},
	}
	starGlyphs = []rune{'.', '+', '*'}
)

// Render draws the star field, the formation, shots, the cannon and the HUD.
func (g *Game) Render(dst *core.Screen) {
	g.renderStars(dst)
	g.renderEnemies(dst)
	g.renderBullets(dst)
	g.renderCannon(dst)
	g.renderHUD(dst)
}

// renderStars draws a fixed star field whose stars twinkle in turn.
func (g *Game) renderStars(dst *core.Screen) {
	w, h := float64(dst.Width()), float64(dst.Height()-hudRows)
	t := float64(g.frames) / float64(core.Max(g.runtime.TickRate, 1))
	for i := 0; i < g.cfg.Stars; i++ {
		fi := float64(i)
		x := int((math.Sin(fi*3547.53)*0.5 + 0.5) * w)
		y := hudRows + int((math.Cos(fi*8677.37)*0.5+0.5)*h)
		bright := math.Sin(t+fi)*0.5 + 0.5
		glyph := starGlyphs[core.Min(int(bright*float64(len(starGlyphs))), len(starGlyphs)-1)]
		c := g.palette.PrimaryMedium
		if bright > 0.5 {
			c = g.palette.Text
		}
		dst.SetCell(x, y, glyph, c)
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	frame := (g.frames / 30) % 2
	width := g.cfg.Grid.Width
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		sprite := []rune(enemySprites[core.Min(e.Kind, len(enemySprites)-1)][frame])
		x, y := int(math.Round(e.Pos.X)), int(math.Round(e.Pos.Y))
		for row := 0; row < g.cfg.Grid.Height; row++ {
			for col := 0; col < width; col++ {
				dst.SetCell(x+col, y+row, sprite[col%len(sprite)], e.Color)
			}
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	if g.bullet.Alive {
		dst.SetCell(int(g.bullet.Pos.X), int(g.bullet.Pos.Y), BulletChar, g.palette.Highlight)
	}
	for _, b := range g.enemyBullets {
		dst.SetCell(int(b.Pos.X), int(b.Pos.Y), EnemyBulletChar, g.palette.Accent)
	}
}

func (g *Game) renderCannon(dst *core.Screen) {
	sprite := []rune(cannonSprite)
	x, y := int(math.Round(g.playerX)), int(g.playerY)
	for i := 0; i < g.cfg.Player.Width; i++ {
		dst.SetCell(x+i, y, sprite[i%len(sprite)], g.palette.Highlight)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	text := g.palette.Text
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", g.ledger.Score()), text)
	dst.DrawTextCenteredColor(0, fmt.Sprintf("LEVEL %d", g.level), text)

	hearts := strings.Repeat(string(LifeChar), g.ledger.Health())
	label := "LIVES " + hearts
	dst.DrawTextColor(dst.Width()-len([]rune(label))-1, 0, label, g.palette.Accent)
}
