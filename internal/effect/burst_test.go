package effect

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurstRadius(t *testing.T) {
	assert.Equal(t, 0, BurstRadius(0))
	assert.Equal(t, 0, BurstRadius(99*time.Millisecond))
	assert.Equal(t, 1, BurstRadius(100*time.Millisecond))
	assert.Equal(t, 25, BurstRadius(2500*time.Millisecond))
}

func TestBurstSparkColours(t *testing.T) {
	g := geo(80, 40)
	b := NewBurst(rand.New(rand.NewSource(3)))
	rec := &recorder{}

	var sumR, sumG float64
	for tick := 0; tick < 20; tick++ {
		rec.writes = rec.writes[:0]
		b.Render(rec, Frame{Geometry: g, Elapsed: time.Duration(tick) * 50 * time.Millisecond})
		for _, w := range rec.writes {
			assert.GreaterOrEqual(t, w.Cell.Color.R, uint8(200))
			assert.LessOrEqual(t, w.Cell.Color.G, uint8(100))
			assert.Zero(t, w.Cell.Color.B)
			assert.Equal(t, '*', w.Cell.Glyph)
			sumR += float64(w.Cell.Color.R)
			sumG += float64(w.Cell.Color.G)
		}
	}
	assert.Equal(t, 20, rec.clears)
	assert.Greater(t, sumR, sumG, "sparks are red-biased")
}

func TestBurstSparksOnRing(t *testing.T) {
	g := geo(200, 200)
	rec := &recorder{}
	NewBurst(rand.New(rand.NewSource(1))).Render(rec, Frame{Geometry: g, Elapsed: 3 * time.Second})

	require.Len(t, rec.writes, 72, "ring fits: every angle plotted")
	cx, cy := g.Center()
	for _, w := range rec.writes {
		dx := float64(w.X - cx)
		dy := float64(w.Y - cy)
		d2 := dx*dx + dy*dy
		assert.InDelta(t, 900, d2, 100, "truncation keeps sparks within a cell of r=30")
	}
}

func TestBurstClipsToScreen(t *testing.T) {
	g := geo(20, 6)
	rec := &recorder{}
	NewBurst(nil).Render(rec, Frame{Geometry: g, Elapsed: 800 * time.Millisecond})

	assert.NotEmpty(t, rec.writes)
	assert.Less(t, len(rec.writes), 72)
	for _, w := range rec.writes {
		assert.True(t, w.X >= 0 && w.X < g.Width && w.Y >= 0 && w.Y < g.Height, "(%d,%d)", w.X, w.Y)
	}
}

func TestBurstRadiusZeroCollapses(t *testing.T) {
	g := geo(10, 4)
	rec := &recorder{}
	NewBurst(nil).Render(rec, Frame{Geometry: g})

	require.Len(t, rec.writes, 72)
	for _, w := range rec.writes {
		assert.Equal(t, 5, w.X)
		assert.Equal(t, 2, w.Y)
	}
}
