package effect

import (
	"time"

	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
)

const (
	sweepGlyph    = '*'
	sweepBand     = 100 * time.Millisecond
	sweepInterval = 16 * time.Millisecond
)

// Sweep scrolls the seven-band spectrum across every column. Most cells
// keep their colour between ticks, so it is rendered differentially.
type Sweep struct{}

func NewSweep() *Sweep { return &Sweep{} }

func (*Sweep) Name() string            { return "sweep" }
func (*Sweep) Interval() time.Duration { return sweepInterval }
func (*Sweep) Strategy() Strategy      { return Differential }

// SweepIndex is the spectrum band shown in column x after elapsed.
func SweepIndex(x int, elapsed time.Duration) int {
	offset := int(elapsed / sweepBand)
	return (x + offset) % len(palette.Spectrum)
}

func (s *Sweep) Render(dst Target, f Frame) {
	for x := 0; x < f.Geometry.Width; x++ {
		cell := frame.Cell{Glyph: sweepGlyph, Color: palette.Spectrum[SweepIndex(x, f.Elapsed)]}
		for y := 0; y < f.Geometry.Height; y++ {
			dst.Set(x, y, cell)
		}
	}
}
