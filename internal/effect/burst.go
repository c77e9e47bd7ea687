package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
)

const (
	burstGlyph    = '*'
	burstSpeed    = 10.0 // cells per second
	burstStep     = 5    // degrees between sparks
	burstInterval = 50 * time.Millisecond
)

// Burst draws a ring of sparks whose radius grows linearly with time.
// Colours are sampled independently per spark per tick.
type Burst struct {
	rng *rand.Rand
}

// NewBurst uses rng for spark colours; nil seeds from the clock.
func NewBurst(rng *rand.Rand) *Burst {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Burst{rng: rng}
}

func (*Burst) Name() string            { return "burst" }
func (*Burst) Interval() time.Duration { return burstInterval }
func (*Burst) Strategy() Strategy      { return FullRedraw }

// BurstRadius is the ring radius in whole cells after elapsed.
func BurstRadius(elapsed time.Duration) int {
	return int(elapsed.Seconds() * burstSpeed)
}

func (b *Burst) Render(dst Target, f Frame) {
	dst.Clear()

	radius := float64(BurstRadius(f.Elapsed))
	cx, cy := f.Geometry.Center()
	w := float64(f.Geometry.Width)
	h := float64(f.Geometry.Height)

	for deg := 0; deg < 360; deg += burstStep {
		rad := float64(deg) * math.Pi / 180
		px := float64(cx) + math.Cos(rad)*radius
		py := float64(cy) + math.Sin(rad)*radius
		if px < 0 || px >= w || py < 0 || py >= h {
			continue
		}
		dst.Set(int(px), int(py), frame.Cell{Glyph: burstGlyph, Color: b.spark()})
	}
}

// spark is red-biased: R in [200,255], G in [0,100], no blue.
func (b *Burst) spark() palette.RGB {
	return palette.RGB{
		R: uint8(200 + b.rng.Intn(56)),
		G: uint8(b.rng.Intn(101)),
	}
}
