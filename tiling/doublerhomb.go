package tiling

import (
	"fmt"

	"github.com/katalvlaran/switchgrid/coords"
	"github.com/katalvlaran/switchgrid/switchboard"
)

// DoubleRhomb builds the connection table for 45°-rotated diamond fields
// tiled twice over a rhombic input lattice, covering every inner lattice
// point exactly twice.
//
// The input is addressed as produced by DoubleRect: first the long rows
// (an XLongInChannels × YLongInChannels grid), then the short rows (one
// smaller on each axis), e.g.
//
//	*   *   *   *
//	  *   *   *
//	*   *   *   *
//	  *   *   *
//	*   *   *   *
//
// A diamond of edge d spans 2d-1 logical rows with widths
// 1,2,…,d,…,2,1; even logical rows index the long grid, odd rows the
// short grid (offset by the long-row channel count). When the long grid
// is narrower than it is tall, the tiling starts in a short row, which
// shifts the first field to minimize border loss.
//
// Complexity: O(output_dim) time and memory, one shot.
func DoubleRhomb(cfg DoubleRhombConfig) (*DoubleRhombLayout, error) {
	if cfg.InChannelDim == 0 {
		cfg.InChannelDim = 1
	}
	if cfg.XLongInChannels < 1 || cfg.YLongInChannels < 1 ||
		cfg.DiagFieldChannels < 1 || cfg.InChannelDim < 1 {
		return nil, fmt.Errorf("%w: %+v", ErrBadGeometry, cfg)
	}
	if cfg.DiagFieldChannels%2 != 0 {
		return nil, fmt.Errorf("%w: diag_field_channels was %d", ErrOddFieldSize, cfg.DiagFieldChannels)
	}
	xl, yl, diag := cfg.XLongInChannels, cfg.YLongInChannels, cfg.DiagFieldChannels

	// Fewer long columns than long rows: start the tiling in a short row.
	startedInShort := 0
	if xl < yl {
		startedInShort = 1
	}
	xRange := xl - (1 - startedInShort) - diag
	yRange := yl - startedInShort - diag
	if xRange < 0 || xRange%(diag/2) != 0 {
		return nil, fmt.Errorf("%w: diag_field_channels %d vs x_long_in_channels %d",
			ErrIncompatibleFieldSize, diag, xl)
	}
	if yRange < 0 || yRange%(diag/2) != 0 {
		return nil, fmt.Errorf("%w: diag_field_channels %d vs y_long_in_channels %d",
			ErrIncompatibleFieldSize, diag, yl)
	}

	longTr, err := coords.New(xl, yl)
	if err != nil {
		return nil, err
	}
	shortTr, err := coords.New(xl-1, yl-1)
	if err != nil {
		return nil, err
	}
	shortOffset := xl * yl

	outChannelDim := cfg.InChannelDim * diag * diag
	xOut := 2*xRange/diag + 1
	yOut := 2*yRange/diag + 1
	conns := make([]int, 0, xOut*yOut*outChannelDim)
	for yOutChan := 0; yOutChan < yOut; yOutChan++ {
		for xOutChan := 0; xOutChan < xOut; xOutChan++ {
			xStart := (1+xOutChan)*diag/2 - startedInShort
			yStart := yOutChan*diag + startedInShort
			// Diamond interior: 2*diag-1 logical rows, half-width growing
			// to the center then shrinking symmetrically.
			for iy := 0; iy < 2*diag-1; iy++ {
				yIn := yStart + iy
				width := iy + 1
				if iy > diag-1 {
					width = diag - 1 - iy%diag
				}
				for x := xStart - width/2; x < xStart+width/2+width%2; x++ {
					var idx int
					if yIn%2 == 0 {
						// Long row. The short-row start shifts even rows
						// one channel right.
						idx, err = longTr.ImageToIndex(x+startedInShort, yIn/2)
					} else {
						idx, err = shortTr.ImageToIndex(x, yIn/2)
						idx += shortOffset
					}
					if err != nil {
						return nil, err
					}
					conns = appendSlots(conns, idx, cfg.InChannelDim)
				}
			}
		}
	}

	inputDim := (2*xl*yl - xl - yl + 1) * cfg.InChannelDim
	sb, err := switchboard.NewChannel(inputDim, conns, outChannelDim, cfg.InChannelDim)
	if err != nil {
		return nil, err
	}

	return &DoubleRhombLayout{
		Switchboard:  sb,
		XOutChannels: xOut,
		YOutChannels: yOut,
	}, nil
}
