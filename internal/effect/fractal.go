package effect

import (
	"math"
	"time"

	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
	"github.com/san-kum/glint/internal/tty"
)

const (
	MaxIter = 100

	CenterReal = -0.5
	CenterImag = 0.0

	fractalGlyph    = '▓'
	fractalInterval = 32 * time.Millisecond

	zoomBase  = 0.05
	zoomSpeed = 0.2
	zoomStep  = 0.016 // phase advance per tick

	resetThreshold = 50.0
	bounceMax      = 2.5
	bounceMin      = 0.2
)

// ZoomLaw yields the zoom factor and colour phase for the next tick.
type ZoomLaw interface {
	Next(elapsed time.Duration) (zoom, phase float64)
}

// ResetZoom zooms in exponentially and starts over once past 50x.
type ResetZoom struct {
	phase float64
}

func (z *ResetZoom) Next(time.Duration) (float64, float64) {
	z.phase += zoomStep
	zoom := math.Exp(zoomBase + z.phase*zoomSpeed)
	if zoom > resetThreshold {
		z.phase = 0
	}
	return zoom, z.phase
}

// BounceZoom runs the exponential law forwards and backwards, turning
// around above 2.5x and below 0.2x.
type BounceZoom struct {
	phase   float64
	outward bool
}

func (z *BounceZoom) Next(time.Duration) (float64, float64) {
	if z.outward {
		z.phase -= zoomStep
	} else {
		z.phase += zoomStep
	}
	zoom := math.Exp(zoomBase + z.phase*zoomSpeed)

	switch {
	case !z.outward && zoom > bounceMax:
		z.outward = true
	case z.outward && zoom < bounceMin:
		z.outward = false
	}
	return zoom, z.phase
}

// SineZoom oscillates between 0.5x and 1.5x with wall-clock time, in float32.
type SineZoom struct{}

func (SineZoom) Next(elapsed time.Duration) (float64, float64) {
	t := float32(elapsed.Seconds())
	zoom := 1 + float32(math.Sin(float64(t)))*0.5
	return float64(zoom), float64(t)
}

// Fractal renders the Mandelbrot set around (-0.5, 0).
type Fractal struct {
	name   string
	law    ZoomLaw
	single bool // float32 mapping and iteration
}

func NewFractal() *Fractal {
	return &Fractal{name: "fractal", law: &ResetZoom{}}
}

func NewOscillatingFractal() *Fractal {
	return &Fractal{name: "fractal-oscillating", law: &BounceZoom{}}
}

func NewFastFractal() *Fractal {
	return &Fractal{name: "fractal-fast", law: SineZoom{}, single: true}
}

func (fr *Fractal) Name() string          { return fr.name }
func (*Fractal) Interval() time.Duration { return fractalInterval }
func (*Fractal) Strategy() Strategy      { return FullRedraw }

func (fr *Fractal) Render(dst Target, f Frame) {
	zoom, phase := fr.law.Next(f.Elapsed)
	g := f.Geometry

	eachUncovered(f, func(x, y, col, row int) {
		var iter int
		if fr.single {
			re, im := PlanePoint32(col, row, g, float32(zoom))
			iter = Escape32(re, im, MaxIter)
		} else {
			re, im := PlanePoint(col, row, g, zoom)
			iter = Escape(re, im, MaxIter)
		}
		dst.Set(x, y, FractalCell(iter, phase))
	})
}

// PlanePoint maps the 1-based cell (col, row) onto the complex plane.
func PlanePoint(col, row int, g tty.Geometry, zoom float64) (re, im float64) {
	w := float64(g.Width)
	h := float64(g.Height)
	re = (float64(col)-w/2)*4/(w*zoom) + CenterReal
	im = (float64(row)-h/2)*4/(h*zoom) + CenterImag
	return re, im
}

func PlanePoint32(col, row int, g tty.Geometry, zoom float32) (re, im float32) {
	w := float32(g.Width)
	h := float32(g.Height)
	re = (float32(col)-w/2)*4/(w*zoom) + CenterReal
	im = (float32(row)-h/2)*4/(h*zoom) + CenterImag
	return re, im
}

// Escape counts z <- z^2 + c iterations until |z|^2 >= 4, capped at maxIter.
func Escape(re, im float64, maxIter int) int {
	var zr, zi float64
	iter := 0
	for iter < maxIter && zr*zr+zi*zi < 4 {
		zr, zi = zr*zr-zi*zi+re, 2*zr*zi+im
		iter++
	}
	return iter
}

func Escape32(re, im float32, maxIter int) int {
	var zr, zi float32
	iter := 0
	for iter < maxIter && zr*zr+zi*zi < 4 {
		zr, zi = zr*zr-zi*zi+re, 2*zr*zi+im
		iter++
	}
	return iter
}

// FractalCell shades an escape count. Points that never escape are black.
func FractalCell(iter int, phase float64) frame.Cell {
	if iter >= MaxIter {
		return frame.Cell{Glyph: fractalGlyph, Color: palette.Black}
	}
	hue := palette.WrapHue(float64(iter)/MaxIter + phase*0.1)
	return frame.Cell{Glyph: fractalGlyph, Color: palette.HSVToRGB(hue, 0.8, 1.0)}
}
