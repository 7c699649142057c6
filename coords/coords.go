package coords

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a coordinate, flat index, or grid dimension
// outside the valid range of the translator.
var ErrOutOfRange = errors.New("coords: value out of range")

// Translator converts between 2D grid coordinates and row-major flat
// indices for a fixed XDim×YDim grid.
//
// The image convention takes x first (x = column, y = row):
//
//	+------> x
//	| 0 1
//	| 2 3
//	y v
//
// The array convention takes the row first, as in arr[row][col].
// Both map to the same flat index row*XDim + col.
type Translator struct {
	XDim, YDim int
}

// New constructs a Translator for an xDim×yDim grid.
// Both dimensions must be ≥ 1; returns ErrOutOfRange otherwise.
func New(xDim, yDim int) (Translator, error) {
	if xDim < 1 || yDim < 1 {
		return Translator{}, fmt.Errorf("%w: grid dimensions %dx%d must be at least 1x1", ErrOutOfRange, xDim, yDim)
	}

	return Translator{XDim: xDim, YDim: yDim}, nil
}

// Size returns the number of cells in the grid.
func (t Translator) Size() int { return t.XDim * t.YDim }

// ImageToIndex maps image coordinates (x,y) to the flat index y*XDim+x.
// Returns ErrOutOfRange when either coordinate lies outside the grid.
func (t Translator) ImageToIndex(x, y int) (int, error) {
	if x < 0 || x >= t.XDim {
		return 0, fmt.Errorf("%w: x coordinate %d not in [0,%d)", ErrOutOfRange, x, t.XDim)
	}
	if y < 0 || y >= t.YDim {
		return 0, fmt.Errorf("%w: y coordinate %d not in [0,%d)", ErrOutOfRange, y, t.YDim)
	}

	return y*t.XDim + x, nil
}

// ArrayToIndex maps array coordinates (row,col) to the flat index
// row*XDim+col. Returns ErrOutOfRange for coordinates outside the grid.
func (t Translator) ArrayToIndex(row, col int) (int, error) {
	if row < 0 || row >= t.YDim {
		return 0, fmt.Errorf("%w: row index %d not in [0,%d)", ErrOutOfRange, row, t.YDim)
	}
	if col < 0 || col >= t.XDim {
		return 0, fmt.Errorf("%w: column index %d not in [0,%d)", ErrOutOfRange, col, t.XDim)
	}

	return row*t.XDim + col, nil
}

// IndexToImage maps a flat index back to image coordinates (x,y).
// Returns ErrOutOfRange when index is not in [0, XDim*YDim).
func (t Translator) IndexToImage(index int) (x, y int, err error) {
	if index < 0 || index >= t.Size() {
		return 0, 0, fmt.Errorf("%w: index %d not in [0,%d)", ErrOutOfRange, index, t.Size())
	}

	return index % t.XDim, index / t.XDim, nil
}

// IndexToArray maps a flat index back to array coordinates (row,col).
// Returns ErrOutOfRange when index is not in [0, XDim*YDim).
func (t Translator) IndexToArray(index int) (row, col int, err error) {
	if index < 0 || index >= t.Size() {
		return 0, 0, fmt.Errorf("%w: index %d not in [0,%d)", ErrOutOfRange, index, t.Size())
	}

	return index / t.XDim, index % t.XDim, nil
}

// ImageToArray converts image coordinates to array coordinates.
// Pure axis swap, never fails.
func (t Translator) ImageToArray(x, y int) (row, col int) { return y, x }

// ArrayToImage converts array coordinates to image coordinates.
// Pure axis swap, never fails.
func (t Translator) ArrayToImage(row, col int) (x, y int) { return col, row }
