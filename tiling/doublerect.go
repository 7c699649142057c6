package tiling

import (
	"fmt"

	"github.com/katalvlaran/switchgrid/coords"
	"github.com/katalvlaran/switchgrid/switchboard"
)

// DoubleRect builds the connection table for an offset double cover:
// first an aligned tiling of non-overlapping fields (the long rows),
// then a second tiling shifted by half a field in both directions (the
// short rows), so that every interior channel is covered exactly twice.
//
// For a 6×4 input and 2×2 fields:
//
//	long row fields:    short row fields:
//	1 1 2 2 3 3         * * * * * *
//	1 1 2 2 3 3         * 7 7 8 8 *
//	4 4 5 5 6 6         * 7 7 8 8 *
//	4 4 5 5 6 6         * * * * * *
//
// Short-row channels follow all long-row channels in the output
// ordering, giving a rhombic output lattice. Total output channels:
// xl*yl + (xl-1)*(yl-1).
//
// Complexity: O(output_dim) time and memory, one shot.
func DoubleRect(cfg DoubleRectConfig) (*DoubleRectLayout, error) {
	if cfg.InChannelDim == 0 {
		cfg.InChannelDim = 1
	}
	if cfg.XInChannels < 1 || cfg.YInChannels < 1 ||
		cfg.XFieldChannels < 1 || cfg.YFieldChannels < 1 || cfg.InChannelDim < 1 {
		return nil, fmt.Errorf("%w: %+v", ErrBadGeometry, cfg)
	}
	if cfg.XFieldChannels%2 != 0 {
		return nil, fmt.Errorf("%w: x_field_channels was %d", ErrOddFieldSize, cfg.XFieldChannels)
	}
	if cfg.YFieldChannels%2 != 0 {
		return nil, fmt.Errorf("%w: y_field_channels was %d", ErrOddFieldSize, cfg.YFieldChannels)
	}

	xl, xUnused, err := doubleCoverAxis("x", cfg.XInChannels, cfg.XFieldChannels, cfg.IgnoreCover)
	if err != nil {
		return nil, err
	}
	yl, yUnused, err := doubleCoverAxis("y", cfg.YInChannels, cfg.YFieldChannels, cfg.IgnoreCover)
	if err != nil {
		return nil, err
	}

	tr, err := coords.New(cfg.XInChannels, cfg.YInChannels)
	if err != nil {
		return nil, err
	}
	outChannelDim := cfg.InChannelDim * cfg.XFieldChannels * cfg.YFieldChannels
	outChannels := xl*yl + (xl-1)*(yl-1)
	conns := make([]int, 0, outChannels*outChannelDim)

	// Aligned long-row fields.
	for yOutChan := 0; yOutChan < yl; yOutChan++ {
		for xOutChan := 0; xOutChan < xl; xOutChan++ {
			conns, err = emitField(tr, conns,
				xOutChan*cfg.XFieldChannels, yOutChan*cfg.YFieldChannels,
				cfg.XFieldChannels, cfg.YFieldChannels, cfg.InChannelDim)
			if err != nil {
				return nil, err
			}
		}
	}
	// Offset short-row fields, shifted by half a field on both axes.
	for yOutChan := 0; yOutChan < yl-1; yOutChan++ {
		for xOutChan := 0; xOutChan < xl-1; xOutChan++ {
			conns, err = emitField(tr, conns,
				xOutChan*cfg.XFieldChannels+cfg.XFieldChannels/2,
				yOutChan*cfg.YFieldChannels+cfg.YFieldChannels/2,
				cfg.XFieldChannels, cfg.YFieldChannels, cfg.InChannelDim)
			if err != nil {
				return nil, err
			}
		}
	}

	sb, err := switchboard.NewChannel(
		cfg.XInChannels*cfg.YInChannels*cfg.InChannelDim,
		conns, outChannelDim, cfg.InChannelDim)
	if err != nil {
		return nil, err
	}

	return &DoubleRectLayout{
		Switchboard:      sb,
		XLongOutChannels: xl,
		YLongOutChannels: yl,
		XUnusedChannels:  xUnused,
		YUnusedChannels:  yUnused,
	}, nil
}

// doubleCoverAxis validates one axis of the offset double cover and
// returns the long-row field count and trailing uncovered channels.
// The implicit spacing is half the field size.
func doubleCoverAxis(axis string, in, field int, ignoreCover bool) (long, unused int, err error) {
	if field > in {
		return 0, 0, fmt.Errorf("%w: %s field %d exceeds %d input channels", ErrFieldTooLarge, axis, field, in)
	}
	long = in / field
	unused = (in - field) % (field / 2)
	if unused != 0 && !ignoreCover {
		return 0, 0, fmt.Errorf("%w: %d trailing channels unrouted in %s-direction",
			ErrIncompleteCoverage, unused, axis)
	}
	// A border remainder of half a field or more would make the offset
	// rows as long as the aligned ones, an ambiguous tiling.
	if in-long*field >= field/2 {
		return 0, 0, fmt.Errorf("%w: %s remainder %d with field %d",
			ErrShortRowDegenerate, axis, in-long*field, field)
	}

	return long, unused, nil
}
