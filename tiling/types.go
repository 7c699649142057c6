package tiling

import (
	"github.com/katalvlaran/switchgrid/coords"
	"github.com/katalvlaran/switchgrid/switchboard"
)

// RectConfig parametrizes the Rectangular tiler.
//
// Zero values for XFieldSpacing, YFieldSpacing, and InChannelDim default
// to 1 (maximal field overlap, scalar channels).
type RectConfig struct {
	// XInChannels, YInChannels give the input grid size in channels.
	XInChannels, YInChannels int
	// XFieldChannels, YFieldChannels give the field size per output channel.
	XFieldChannels, YFieldChannels int
	// XFieldSpacing, YFieldSpacing give the stride between adjacent fields.
	XFieldSpacing, YFieldSpacing int
	// InChannelDim is the number of slots per input channel.
	InChannelDim int
	// IgnoreCover accepts tilings that leave border channels unrouted.
	IgnoreCover bool
}

// DoubleRectConfig parametrizes the DoubleRect tiler. Field dimensions
// must be even; the spacing is fixed at half the field size.
// InChannelDim zero defaults to 1.
type DoubleRectConfig struct {
	XInChannels, YInChannels       int
	XFieldChannels, YFieldChannels int
	InChannelDim                   int
	IgnoreCover                    bool
}

// DoubleRhombConfig parametrizes the DoubleRhomb tiler over a rhombic
// input layout (long rows first, then short rows, as produced by
// DoubleRect). InChannelDim zero defaults to 1.
type DoubleRhombConfig struct {
	// XLongInChannels, YLongInChannels give the long-row grid size.
	XLongInChannels, YLongInChannels int
	// DiagFieldChannels is the diamond edge size before rotation; must be even.
	DiagFieldChannels int
	InChannelDim      int
}

// RectLayout is the result of Rectangular: the routing switchboard plus
// the derived grid attributes.
type RectLayout struct {
	*switchboard.Switchboard
	// XOutChannels, YOutChannels give the output grid size in channels.
	XOutChannels, YOutChannels int
	// XUnusedChannels, YUnusedChannels count trailing input channels the
	// tiling leaves unrouted on each axis (nonzero only with IgnoreCover).
	XUnusedChannels, YUnusedChannels int
}

// DoubleRectLayout is the result of DoubleRect. Output channels are
// ordered long rows first, then short rows.
type DoubleRectLayout struct {
	*switchboard.Switchboard
	// XLongOutChannels, YLongOutChannels give the aligned (long-row)
	// output grid size; the offset grid is one smaller on each axis.
	XLongOutChannels, YLongOutChannels int
	XUnusedChannels, YUnusedChannels   int
}

// DoubleRhombLayout is the result of DoubleRhomb.
type DoubleRhombLayout struct {
	*switchboard.Switchboard
	XOutChannels, YOutChannels int
}

// emitField appends the slot indices of one rectangular field to conns:
// rows first (dy outer), columns inner, inChannelDim consecutive slots
// per covered cell.
func emitField(tr coords.Translator, conns []int, xStart, yStart, width, height, inChannelDim int) ([]int, error) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			idx, err := tr.ImageToIndex(xStart+dx, yStart+dy)
			if err != nil {
				return nil, err
			}
			conns = appendSlots(conns, idx, inChannelDim)
		}
	}

	return conns, nil
}

// appendSlots appends the inChannelDim consecutive slot indices of input
// channel idx.
func appendSlots(conns []int, idx, inChannelDim int) []int {
	base := idx * inChannelDim
	for k := 0; k < inChannelDim; k++ {
		conns = append(conns, base+k)
	}

	return conns
}
