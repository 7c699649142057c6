package tiling

import (
	"fmt"

	"github.com/katalvlaran/switchgrid/coords"
	"github.com/katalvlaran/switchgrid/switchboard"
)

// Rectangular builds the connection table for a regular, possibly
// overlapping rectangular field tiling of a 2D channel grid.
//
// Output-channel numbering is row-major over field placements (yOut
// outer, xOut inner); within a field, rows first, then columns, with
// InChannelDim consecutive slots per covered cell. Each output channel
// therefore spans out_channel_dim = InChannelDim × XFieldChannels ×
// YFieldChannels slots.
//
// An axis is fully covered iff the spacing does not exceed the field
// (no interior gaps) and the field tiling exactly reaches the last
// channel: (grid-field) mod spacing == 0. Anything else fails with
// ErrIncompleteCoverage unless cfg.IgnoreCover is set.
//
// Complexity: O(output_dim) time and memory, one shot.
func Rectangular(cfg RectConfig) (*RectLayout, error) {
	if cfg.XFieldSpacing == 0 {
		cfg.XFieldSpacing = 1
	}
	if cfg.YFieldSpacing == 0 {
		cfg.YFieldSpacing = 1
	}
	if cfg.InChannelDim == 0 {
		cfg.InChannelDim = 1
	}
	if cfg.XInChannels < 1 || cfg.YInChannels < 1 ||
		cfg.XFieldChannels < 1 || cfg.YFieldChannels < 1 ||
		cfg.XFieldSpacing < 1 || cfg.YFieldSpacing < 1 || cfg.InChannelDim < 1 {
		return nil, fmt.Errorf("%w: %+v", ErrBadGeometry, cfg)
	}

	xOut, xUnused, err := coveredAxis("x", cfg.XInChannels, cfg.XFieldChannels, cfg.XFieldSpacing, cfg.IgnoreCover)
	if err != nil {
		return nil, err
	}
	yOut, yUnused, err := coveredAxis("y", cfg.YInChannels, cfg.YFieldChannels, cfg.YFieldSpacing, cfg.IgnoreCover)
	if err != nil {
		return nil, err
	}

	tr, err := coords.New(cfg.XInChannels, cfg.YInChannels)
	if err != nil {
		return nil, err
	}
	outChannelDim := cfg.InChannelDim * cfg.XFieldChannels * cfg.YFieldChannels
	conns := make([]int, 0, xOut*yOut*outChannelDim)
	for yOutChan := 0; yOutChan < yOut; yOutChan++ {
		for xOutChan := 0; xOutChan < xOut; xOutChan++ {
			conns, err = emitField(tr, conns,
				xOutChan*cfg.XFieldSpacing, yOutChan*cfg.YFieldSpacing,
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

	return &RectLayout{
		Switchboard:     sb,
		XOutChannels:    xOut,
		YOutChannels:    yOut,
		XUnusedChannels: xUnused,
		YUnusedChannels: yUnused,
	}, nil
}

// coveredAxis validates one axis of a rectangular tiling and returns the
// number of field placements and the trailing uncovered channel count.
func coveredAxis(axis string, in, field, spacing int, ignoreCover bool) (out, unused int, err error) {
	if field > in {
		return 0, 0, fmt.Errorf("%w: %s field %d exceeds %d input channels", ErrFieldTooLarge, axis, field, in)
	}
	out = (in-field)/spacing + 1
	unused = (in - field) % spacing
	if ignoreCover {
		return out, unused, nil
	}
	// Exact coverage: fields must touch (spacing ≤ field) and the last
	// placement must reach the final channel.
	if spacing > field {
		return 0, 0, fmt.Errorf("%w: %s spacing %d exceeds field %d, leaving interior gaps",
			ErrIncompleteCoverage, axis, spacing, field)
	}
	if unused != 0 {
		return 0, 0, fmt.Errorf("%w: %d trailing channels unrouted in %s-direction",
			ErrIncompleteCoverage, unused, axis)
	}

	return out, unused, nil
}
