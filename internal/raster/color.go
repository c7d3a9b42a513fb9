package raster

// Color is an 8-bit RGB triple with saturating arithmetic.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from channel values.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// FromHex unpacks a 0xRRGGBB value.
func FromHex(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Hex packs the color as 0xRRGGBB for framebuffer storage.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies every channel by the intensity, clamped to [0, 255].
// Intensity 0 yields black; intensity 1 returns the color unchanged.
func (c Color) Scale(intensity float64) Color {
	return Color{
		R: clamp255(float64(c.R) * intensity),
		G: clamp255(float64(c.G) * intensity),
		B: clamp255(float64(c.B) * intensity),
	}
}

// Add saturating-adds two colors channel-wise.
func (c Color) Add(o Color) Color {
	return Color{
		R: clamp255(float64(c.R) + float64(o.R)),
		G: clamp255(float64(c.G) + float64(o.G)),
		B: clamp255(float64(c.B) + float64(o.B)),
	}
}

// Lerp interpolates linearly toward o by t. t is clamped to [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: clamp255(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clamp255(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clamp255(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
