package frame

import "errors"

// ErrShapeMismatch is returned when two buffers of different dimensions are diffed.
var ErrShapeMismatch = errors.New("frame: buffer dimensions differ")

// Change is one cell that must be rewritten.
type Change struct {
	X, Y int
	Cell Cell
}

// Diff lists every cell of current that differs from previous in glyph or
// colour, in row-major order. Buffers of different shape yield nil.
func Diff(current, previous *Buffer) []Change {
	changes, err := DiffChecked(current, previous)
	if err != nil {
		return nil
	}
	return changes
}

// DiffChecked is Diff with an explicit error for mismatched shapes.
func DiffChecked(current, previous *Buffer) ([]Change, error) {
	if !current.sameShape(previous) {
		return nil, ErrShapeMismatch
	}

	var changes []Change
	for y := 0; y < current.Height; y++ {
		row := y * current.Width
		for x := 0; x < current.Width; x++ {
			c := current.cells[row+x]
			if c != previous.cells[row+x] {
				changes = append(changes, Change{X: x, Y: y, Cell: c})
			}
		}
	}
	return changes, nil
}
