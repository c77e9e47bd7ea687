package effect

import (
	"math"
	"time"

	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
)

const (
	waveGlyph    = '▓'
	waveInterval = 32 * time.Millisecond
)

// WaveField is sin(col*0.1 + 2t) + cos(row*0.1 + 1.5t) for 1-based
// coordinates; always within [-2, 2].
func WaveField(col, row int, t float64) float64 {
	return math.Sin(float64(col)*0.1+t*2.0) + math.Cos(float64(row)*0.1+t*1.5)
}

// WaveBlue maps a field value to the blue channel.
func WaveBlue(combined float64) uint8 {
	v := (combined + 2) / 4 * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Wave renders the field in shades of blue.
type Wave struct{}

func NewWave() *Wave { return &Wave{} }

func (*Wave) Name() string            { return "wave" }
func (*Wave) Interval() time.Duration { return waveInterval }
func (*Wave) Strategy() Strategy      { return FullRedraw }

func (*Wave) Render(dst Target, f Frame) {
	t := f.Elapsed.Seconds()
	eachUncovered(f, func(x, y, col, row int) {
		blue := WaveBlue(WaveField(col, row, t))
		dst.Set(x, y, frame.Cell{Glyph: waveGlyph, Color: palette.RGB{B: blue}})
	})
}

// GradientWave renders the same field with a drifting hue. Brightness
// never drops below 0.2.
type GradientWave struct{}

func NewGradientWave() *GradientWave { return &GradientWave{} }

func (*GradientWave) Name() string            { return "wave-gradient" }
func (*GradientWave) Interval() time.Duration { return waveInterval }
func (*GradientWave) Strategy() Strategy      { return FullRedraw }

// GradientColor is the HSV colour of one 1-based cell at time t.
func GradientColor(col, row int, t float64) palette.RGB {
	combined := WaveField(col, row, t)
	hue := palette.WrapHue(t*0.2 + float64(col)*0.02 + float64(row)*0.02)
	value := (combined+2)/4*0.8 + 0.2
	return palette.HSVToRGB(hue, 0.8, value)
}

func (*GradientWave) Render(dst Target, f Frame) {
	t := f.Elapsed.Seconds()
	eachUncovered(f, func(x, y, col, row int) {
		dst.Set(x, y, frame.Cell{Glyph: waveGlyph, Color: GradientColor(col, row, t)})
	})
}

// eachUncovered visits every cell not under the caption, passing both the
// 0-based (x, y) and the 1-based (col, row).
func eachUncovered(f Frame, fn func(x, y, col, row int)) {
	for y := 0; y < f.Geometry.Height; y++ {
		row := y + 1
		for x := 0; x < f.Geometry.Width; x++ {
			col := x + 1
			if f.Caption.Covers(col, row) {
				continue
			}
			fn(x, y, col, row)
		}
	}
}
