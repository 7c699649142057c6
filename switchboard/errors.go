package switchboard

import "errors"

// Sentinel errors for switchboard construction and routing.
var (
	// ErrInvalidConnections indicates an empty connection table or an
	// entry referencing an input slot outside [0, input_dim).
	ErrInvalidConnections = errors.New("switchboard: invalid connection table")
	// ErrNotInvertible indicates Unapply was called on a mapping that is
	// not a bijection.
	ErrNotInvertible = errors.New("switchboard: connections are not invertible")
	// ErrDimensionMismatch indicates a vector whose length does not match
	// the switchboard dimension.
	ErrDimensionMismatch = errors.New("switchboard: vector dimension mismatch")
	// ErrChannelGeometry indicates non-positive channel dimensions.
	ErrChannelGeometry = errors.New("switchboard: channel dimensions must be positive")
	// ErrNoChannelGeometry indicates a channel query on a switchboard
	// built without channel geometry.
	ErrNoChannelGeometry = errors.New("switchboard: switchboard has no channel geometry")
	// ErrChannelIndex indicates an output-channel index out of range.
	ErrChannelIndex = errors.New("switchboard: output channel index out of range")
)
