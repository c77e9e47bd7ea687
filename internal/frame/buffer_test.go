package frame

import (
	"testing"

	"github.com/san-kum/glint/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsBlank(t *testing.T) {
	b := New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Blank, b.At(x, y))
		}
	}
	assert.Equal(t, "    \n    \n    \n", b.String())
}

func TestSetOutOfBoundsIsNoop(t *testing.T) {
	b := New(3, 2)
	before := b.Clone()

	mark := Cell{Glyph: '#', Color: palette.White}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}} {
		b.Set(p[0], p[1], mark)
	}

	assert.Empty(t, Diff(b, before))
}

func TestSetAndAt(t *testing.T) {
	b := New(3, 2)
	c := Cell{Glyph: 'x', Color: palette.RGB{R: 1, G: 2, B: 3}}
	b.Set(2, 1, c)

	assert.Equal(t, c, b.At(2, 1))
	assert.Equal(t, Blank, b.At(1, 1))
	assert.Equal(t, Blank, b.At(9, 9))
}

func TestCloneIsDeep(t *testing.T) {
	b := New(2, 2)
	c := b.Clone()
	b.Set(0, 0, Cell{Glyph: 'a'})

	assert.Equal(t, Blank, c.At(0, 0))
}

func TestCopyFrom(t *testing.T) {
	src := New(3, 3)
	src.Set(1, 1, Cell{Glyph: 'o', Color: palette.White})

	dst := New(1, 1)
	dst.CopyFrom(src)
	require.Equal(t, 3, dst.Width)
	require.Equal(t, 3, dst.Height)
	assert.Empty(t, Diff(dst, src))

	src.Set(0, 0, Cell{Glyph: 'z'})
	assert.Equal(t, Blank, dst.At(0, 0))
}
