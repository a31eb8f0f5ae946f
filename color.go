package mdbox

// BaseColor is one of the eight base terminal hues.
type BaseColor uint8

// Base hues, in standard SGR order.
const (
	Black BaseColor = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

// Color is an optional index into the 256-entry terminal palette. The zero
// value means "no color set", which is distinct from any palette index.
type Color struct {
	index uint8
	set   bool
}

// DarkColor returns the dark variant of a base hue (palette 0-7).
func DarkColor(base BaseColor) Color {
	return Color{index: uint8(base), set: true}
}

// LightColor returns the light variant of a base hue (palette 8-15).
func LightColor(base BaseColor) Color {
	return Color{index: uint8(base) + 8, set: true}
}

// GreyColor quantizes an 8-bit luminance onto the palette greyscale ramp.
// Level 0 maps to pure black (16) and level 255 to pure white (231).
func GreyColor(level uint8) Color {
	level >>= 4
	switch level {
	case 0:
		return Color{index: 16, set: true}
	case 15:
		return Color{index: 231, set: true}
	default:
		return Color{index: 231 + level, set: true}
	}
}

// RGBColor quantizes a 24-bit color onto the palette. Near-grey triples use
// the greyscale ramp; everything else lands in the 6x6x6 color cube.
func RGBColor(r, g, b uint8) Color {
	if r>>4 == g>>4 && g>>4 == b>>4 {
		return GreyColor(r)
	}
	ri := uint8(uint32(r) * 6 / 256)
	gi := uint8(uint32(g) * 6 / 256)
	bi := uint8(uint32(b) * 6 / 256)
	return Color{index: 16 + 36*ri + 6*gi + bi, set: true}
}

// Index returns the palette index and whether the color is set.
func (c Color) Index() (uint8, bool) {
	return c.index, c.set
}
