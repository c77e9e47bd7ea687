package tty

import (
	"fmt"

	"golang.org/x/term"
)

// Geometry is the visible size of the terminal in cells.
type Geometry struct {
	Width, Height int
}

func NewGeometry(w, h int) (Geometry, error) {
	g := Geometry{Width: w, Height: h}
	if !g.Valid() {
		return Geometry{}, &Error{Op: "size", Err: fmt.Errorf("%w: %dx%d", ErrUnavailableTerminal, w, h)}
	}
	return g, nil
}

func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Center returns (Width/2, Height/2) with floor division, which places the
// centre left of and above the true middle on odd sizes.
func (g Geometry) Center() (col, row int) {
	return g.Width / 2, g.Height / 2
}

// Query asks the terminal behind fd for its dimensions.
func Query(fd int) (Geometry, error) {
	if !term.IsTerminal(fd) {
		return Geometry{}, &Error{Op: "size", Err: fmt.Errorf("%w: fd %d is not a terminal", ErrUnavailableTerminal, fd)}
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Geometry{}, &Error{Op: "size", Err: fmt.Errorf("%w: %w", ErrUnavailableTerminal, err)}
	}
	return NewGeometry(w, h)
}
