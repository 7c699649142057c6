package switchboard

import "fmt"

// ChannelInputs returns the input-slot indices feeding the given output
// channel: the contiguous table slice
// [channel*OutChannelDim, (channel+1)*OutChannelDim). The result is a
// copy; mutating it does not affect the switchboard.
// Fails with ErrNoChannelGeometry on a flat switchboard and
// ErrChannelIndex for an out-of-range channel.
func (s *Switchboard) ChannelInputs(channel int) ([]int, error) {
	if s.geo == nil {
		return nil, ErrNoChannelGeometry
	}
	if channel < 0 || channel >= s.geo.OutputChannels {
		return nil, fmt.Errorf("%w: channel %d not in [0,%d)", ErrChannelIndex, channel, s.geo.OutputChannels)
	}
	lo := channel * s.geo.OutChannelDim
	out := make([]int, s.geo.OutChannelDim)
	copy(out, s.table.forward[lo:lo+s.geo.OutChannelDim])

	return out, nil
}

// ChannelSwitchboard builds a fresh flat switchboard that routes a full
// input vector to the single given output channel, for processing one
// channel in isolation.
func (s *Switchboard) ChannelSwitchboard(channel int) (*Switchboard, error) {
	conns, err := s.ChannelInputs(channel)
	if err != nil {
		return nil, err
	}

	return New(s.table.inputDim, conns)
}

// CoveredInputChannels returns the sorted indices of all input channels
// (groups of InChannelDim input slots) touched by at least one of the
// given output channels.
//
// Algorithm: mark every input slot referenced by the selected output
// channels in a boolean mask of size InputDim, then OR-fold the mask
// over groups of InChannelDim. Complexity: O(len(channels)*OutChannelDim
// + InputDim).
func (s *Switchboard) CoveredInputChannels(channels ...int) ([]int, error) {
	if s.geo == nil {
		return nil, ErrNoChannelGeometry
	}
	mask := make([]bool, s.table.inputDim)
	for _, ch := range channels {
		if ch < 0 || ch >= s.geo.OutputChannels {
			return nil, fmt.Errorf("%w: channel %d not in [0,%d)", ErrChannelIndex, ch, s.geo.OutputChannels)
		}
		lo := ch * s.geo.OutChannelDim
		for _, slot := range s.table.forward[lo : lo+s.geo.OutChannelDim] {
			mask[slot] = true
		}
	}
	covered := make([]int, 0, len(mask)/s.geo.InChannelDim)
	for ch := 0; ch*s.geo.InChannelDim < len(mask); ch++ {
		lo := ch * s.geo.InChannelDim
		hi := lo + s.geo.InChannelDim
		if hi > len(mask) {
			hi = len(mask)
		}
		for _, hit := range mask[lo:hi] {
			if hit {
				covered = append(covered, ch)
				break
			}
		}
	}

	return covered, nil
}
