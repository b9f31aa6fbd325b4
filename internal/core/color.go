package core

// Color is a terminal foreground color specification for a screen cell.
// It holds either an ANSI 256-color code ("205") or a hex value ("#FF41B4"),
// so palette colors can be passed straight through to the renderer.
// The empty string means the terminal default.
type Color string

// Basic colors for chrome that does not follow the theme (overlays, frames).
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorBlue        Color = "4"
	ColorMagenta     Color = "5"
	ColorCyan        Color = "6"
	ColorWhite       Color = "7"
	ColorBrightWhite Color = "15"
	ColorGray        Color = "245"
	ColorDimGray     Color = "240"
)

// Palette holds the named color roles of a visual theme.
// Games receive a Palette on reset and whenever the theme changes;
// they never pick colors of their own.
type Palette struct {
	Name          string
	Highlight     Color
	Accent        Color
	Secondary1    Color
	Secondary2    Color
	PrimaryDark   Color
	PrimaryMedium Color
	Text          Color
}

// Roles returns the palette as a role name to color mapping.
func (p Palette) Roles() map[string]Color {
	return map[string]Color{
		"highlight":     p.Highlight,
		"accent":        p.Accent,
		"secondary1":    p.Secondary1,
		"secondary2":    p.Secondary2,
		"primaryDark":   p.PrimaryDark,
		"primaryMedium": p.PrimaryMedium,
		"text":          p.Text,
	}
}

// Spawnable returns the four vivid roles used to tint spawned entities.
func (p Palette) Spawnable() []Color {
	return []Color{p.Accent, p.Highlight, p.Secondary1, p.Secondary2}
}

// Or returns c, or fallback when c is unset.
func (c Color) Or(fallback Color) Color {
	if c == ColorDefault {
		return fallback
	}
	return c
}
