package effect

import (
	"time"
	"unicode/utf8"

	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
	"github.com/san-kum/glint/internal/tty"
)

// Target receives 0-based cell writes. Both frame.Buffer and the tty
// screens satisfy it.
type Target interface {
	Set(x, y int, c frame.Cell)
	Clear()
}

type Strategy int

const (
	// Differential effects are diffed against the previous tick.
	Differential Strategy = iota
	// FullRedraw effects write every cell they own each tick.
	FullRedraw
)

func (s Strategy) String() string {
	switch s {
	case Differential:
		return "differential"
	case FullRedraw:
		return "full-redraw"
	default:
		return "unknown"
	}
}

// Frame is everything a generator may read for one tick.
type Frame struct {
	Geometry tty.Geometry
	Caption  Caption
	Elapsed  time.Duration
	Tick     int
}

type Effect interface {
	Name() string
	Interval() time.Duration
	Strategy() Strategy
	Render(dst Target, f Frame)
}

// Caption is the text centred on screen. Column and Row are 1-based
// terminal coordinates of its first glyph.
type Caption struct {
	Text   string
	Column int
	Row    int
}

// NewCaption anchors text at centreColumn - len/2 on the centre row.
func NewCaption(text string, g tty.Geometry) Caption {
	col, row := g.Center()
	// a one-row screen has centre row 0; keep the caption on screen
	if row < 1 {
		row = 1
	}
	return Caption{
		Text:   text,
		Column: col - utf8.RuneCountInString(text)/2,
		Row:    row,
	}
}

func (c Caption) Len() int {
	return utf8.RuneCountInString(c.Text)
}

// Covers reports whether the 1-based cell (col, row) lies in the caption
// span. The span runs one cell past the last glyph.
func (c Caption) Covers(col, row int) bool {
	n := c.Len()
	if n == 0 || row != c.Row {
		return false
	}
	return col >= c.Column && col <= c.Column+n
}

// Draw writes the caption in white.
func (c Caption) Draw(dst Target) {
	x := c.Column - 1
	y := c.Row - 1
	for _, r := range c.Text {
		dst.Set(x, y, frame.Cell{Glyph: r, Color: palette.White})
		x++
	}
}
