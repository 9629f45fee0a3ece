package engine

import "strings"

// Color is the colour of a block and of the board cells it occupies.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorGold // special
	ColorBomb // special
	ColorCount
)

// String returns the lower-case colour name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorGold:
		return "gold"
	case ColorBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// IsSpecial reports whether c is one of the bonus colours.
func (c Color) IsSpecial() bool {
	return c == ColorGold || c == ColorBomb
}

// ParseColor converts a colour name to a Color.
// Returns ColorRed and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return ColorRed, true
	case "blue":
		return ColorBlue, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "purple":
		return ColorPurple, true
	case "gold":
		return ColorGold, true
	case "bomb":
		return ColorBomb, true
	default:
		return ColorRed, false
	}
}

// ClassicPalette returns the five regular block colours.
func ClassicPalette() []Color {
	return []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple}
}

// SpecialPalette returns the bonus colours.
func SpecialPalette() []Color {
	return []Color{ColorGold, ColorBomb}
}
