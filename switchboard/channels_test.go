package switchboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/switchgrid/switchboard"
)

// channelBoard builds a 2-channel switchboard over 8 input slots
// (4 input channels of 2 slots), each output channel 4 slots wide.
//
//	channel 0 reads input slots 0,1,2,3  (input channels 0,1)
//	channel 1 reads input slots 4,5,2,3  (input channels 1,2)
func channelBoard(t *testing.T) *switchboard.Switchboard {
	t.Helper()
	sb, err := switchboard.NewChannel(8, []int{0, 1, 2, 3, 4, 5, 2, 3}, 4, 2)
	require.NoError(t, err)

	return sb
}

// TestNewChannel_Geometry verifies derived channel metadata.
func TestNewChannel_Geometry(t *testing.T) {
	sb := channelBoard(t)

	geo, ok := sb.Geometry()
	require.True(t, ok)
	assert.Equal(t, 4, geo.OutChannelDim)
	assert.Equal(t, 2, geo.InChannelDim)
	assert.Equal(t, 2, geo.OutputChannels)
}

// TestNewChannel_BadDims verifies that non-positive channel dimensions
// are rejected.
func TestNewChannel_BadDims(t *testing.T) {
	_, err := switchboard.NewChannel(4, []int{0, 1}, 0, 1)
	assert.ErrorIs(t, err, switchboard.ErrChannelGeometry)

	_, err = switchboard.NewChannel(4, []int{0, 1}, 2, 0)
	assert.ErrorIs(t, err, switchboard.ErrChannelGeometry)
}

// TestChannelInputs verifies the contiguous table slice per channel.
func TestChannelInputs(t *testing.T) {
	sb := channelBoard(t)

	in0, err := sb.ChannelInputs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, in0)

	in1, err := sb.ChannelInputs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 2, 3}, in1)

	_, err = sb.ChannelInputs(2)
	assert.ErrorIs(t, err, switchboard.ErrChannelIndex)
	_, err = sb.ChannelInputs(-1)
	assert.ErrorIs(t, err, switchboard.ErrChannelIndex)
}

// TestChannelInputs_FlatBoard verifies channel queries need geometry.
func TestChannelInputs_FlatBoard(t *testing.T) {
	sb, err := switchboard.New(4, []int{0, 1, 2, 3})
	require.NoError(t, err)

	_, err = sb.ChannelInputs(0)
	assert.ErrorIs(t, err, switchboard.ErrNoChannelGeometry)
	_, err = sb.CoveredInputChannels(0)
	assert.ErrorIs(t, err, switchboard.ErrNoChannelGeometry)
}

// TestChannelSwitchboard verifies that the per-channel board routes the
// full input to exactly that channel's slots.
func TestChannelSwitchboard(t *testing.T) {
	sb := channelBoard(t)

	sub, err := sb.ChannelSwitchboard(1)
	require.NoError(t, err)
	assert.Equal(t, 8, sub.InputDim())
	assert.Equal(t, 4, sub.OutputDim())

	in := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	out, err := sub.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 2, 3}, out)

	// The sub-board matches the corresponding window of the full output.
	full, err := sb.Apply(in)
	require.NoError(t, err)
	assert.Equal(t, full[4:8], out)
}

// TestCoveredInputChannels verifies the mask-and-fold coverage query.
func TestCoveredInputChannels(t *testing.T) {
	sb := channelBoard(t)

	cov, err := sb.CoveredInputChannels(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cov)

	cov, err = sb.CoveredInputChannels(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cov)

	// Union over both output channels, deduplicated and sorted.
	cov, err = sb.CoveredInputChannels(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, cov)

	// No channels selected: nothing covered.
	cov, err = sb.CoveredInputChannels()
	require.NoError(t, err)
	assert.Empty(t, cov)

	_, err = sb.CoveredInputChannels(0, 5)
	assert.ErrorIs(t, err, switchboard.ErrChannelIndex)
}

// TestCoveredInputChannels_MatchesChannelInputs verifies the coverage of
// a single channel equals its ChannelInputs slots folded to channels.
func TestCoveredInputChannels_MatchesChannelInputs(t *testing.T) {
	sb := channelBoard(t)
	geo, ok := sb.Geometry()
	require.True(t, ok)

	inputs, err := sb.ChannelInputs(0)
	require.NoError(t, err)
	seen := map[int]bool{}
	want := []int{}
	for _, slot := range inputs {
		ch := slot / geo.InChannelDim
		if !seen[ch] {
			seen[ch] = true
			want = append(want, ch)
		}
	}

	got, err := sb.CoveredInputChannels(0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
