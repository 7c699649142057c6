package tiling

import "errors"

// Sentinel errors for tiling generators.
var (
	// ErrBadGeometry indicates a non-positive grid, field, spacing, or
	// channel dimension.
	ErrBadGeometry = errors.New("tiling: geometry parameters must be positive")
	// ErrFieldTooLarge indicates a field dimension exceeding the grid
	// dimension on the same axis.
	ErrFieldTooLarge = errors.New("tiling: field exceeds input grid")
	// ErrIncompleteCoverage indicates a tiling that leaves input channels
	// unrouted while IgnoreCover is false.
	ErrIncompleteCoverage = errors.New("tiling: fields do not cover all input channels")
	// ErrOddFieldSize indicates an odd field dimension passed to a
	// double-cover tiler, which needs half-field offsets.
	ErrOddFieldSize = errors.New("tiling: field size must be even for double cover")
	// ErrShortRowDegenerate indicates a border remainder so large that
	// the offset (short) rows would be as long as the aligned rows.
	ErrShortRowDegenerate = errors.New("tiling: short rows would have same length as long rows")
	// ErrIncompatibleFieldSize indicates a diamond field size that does
	// not evenly divide the derived placement range.
	ErrIncompatibleFieldSize = errors.New("tiling: field size incompatible with input grid")
)
