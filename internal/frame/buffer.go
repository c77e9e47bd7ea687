package frame

import (
	"strings"

	"github.com/san-kum/glint/internal/palette"
)

// Cell is a single terminal position.
type Cell struct {
	Glyph rune
	Color palette.RGB
}

// Blank is the cell every new buffer starts with.
var Blank = Cell{Glyph: ' ', Color: palette.Black}

type Buffer struct {
	Width, Height int
	cells         []Cell
}

func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{
		Width:  w,
		Height: h,
		cells:  make([]Cell, w*h),
	}
	b.Clear()
	return b
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Set writes c at (x, y). Coordinates outside the grid are ignored.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y*b.Width+x] = c
}

// At returns the cell at (x, y), or Blank when out of range.
func (b *Buffer) At(x, y int) Cell {
	if !b.inside(x, y) {
		return Blank
	}
	return b.cells[y*b.Width+x]
}

// Clear resets every cell to Blank
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		Width:  b.Width,
		Height: b.Height,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

// CopyFrom overwrites b with the contents of src. Buffers of a different
// shape are reallocated to match.
func (b *Buffer) CopyFrom(src *Buffer) {
	if len(b.cells) != len(src.cells) {
		b.cells = make([]Cell, len(src.cells))
	}
	b.Width = src.Width
	b.Height = src.Height
	copy(b.cells, src.cells)
}

func (b *Buffer) sameShape(o *Buffer) bool {
	return b.Width == o.Width && b.Height == o.Height
}

// String renders the glyphs only, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteRune(b.cells[y*b.Width+x].Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
