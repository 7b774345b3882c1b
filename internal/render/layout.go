package render

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports matrix dimensions that cannot describe a strip.
var ErrInvalidSize = errors.New("render: matrix dimensions must be positive")

// Layout maps logical (column, row) coordinates onto a strip that is wired
// column-major as a serpentine: even columns run top to bottom, odd columns
// run bottom to top.
type Layout struct {
	w, h int
}

// NewLayout validates the dimensions and returns the layout for a w×h matrix.
func NewLayout(w, h int) (Layout, error) {
	if w <= 0 || h <= 0 {
		return Layout{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return Layout{w: w, h: h}, nil
}

// Width returns the number of columns.
func (l Layout) Width() int { return l.w }

// Height returns the number of rows.
func (l Layout) Height() int { return l.h }

// Cells returns the number of LEDs on the strip.
func (l Layout) Cells() int { return l.w * l.h }

// Index returns the strip position of (col, row). Callers keep the coordinates
// in range.
func (l Layout) Index(col, row int) int {
	if col%2 == 0 {
		return col*l.h + row
	}
	return col*l.h + (l.h - 1 - row)
}

// Coords is the inverse of Index.
func (l Layout) Coords(index int) (col, row int) {
	col = index / l.h
	row = index % l.h
	if col%2 != 0 {
		row = l.h - 1 - row
	}
	return col, row
}
