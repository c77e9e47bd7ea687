package palette

import "math"

// RGB is a 24-bit foreground colour.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Spectrum is the seven-band rainbow used by the sweep effect.
var Spectrum = [7]RGB{
	{255, 0, 0},   // red
	{255, 127, 0}, // orange
	{255, 255, 0}, // yellow
	{0, 255, 0},   // green
	{0, 0, 255},   // blue
	{75, 0, 130},  // indigo
	{148, 0, 211}, // violet
}

// HSVToRGB converts hue, saturation and value in [0,1] to an RGB triple
// using the six-sector model. Channels are truncated, not rounded.
func HSVToRGB(h, s, v float64) RGB {
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch sector(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{channel(r), channel(g), channel(b)}
}

// WrapHue folds any hue into [0,1).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}

func sector(i float64) int {
	s := int(i) % 6
	if s < 0 {
		s += 6
	}
	return s
}

func channel(x float64) uint8 {
	n := int(x * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
