package switchboard

import "fmt"

// Switchboard routes flat vectors through an immutable ConnectionTable.
// A switchboard built with NewChannel additionally carries channel
// geometry for the introspection queries in channels.go.
//
// All geometry is fixed at construction; there is no trainable state and
// no mutation after construction, so one instance may be shared
// read-only across goroutines.
type Switchboard struct {
	table *ConnectionTable
	geo   *ChannelGeometry
}

// ChannelGeometry groups switchboard slots into fixed-size channels.
type ChannelGeometry struct {
	// OutChannelDim is the number of output slots per output channel.
	OutChannelDim int
	// InChannelDim is the number of input slots per input channel.
	InChannelDim int
	// OutputChannels is OutputDim / OutChannelDim. Divisibility is an
	// invariant of every tiling generator and is not re-validated here.
	OutputChannels int
}

// New builds a flat switchboard from a raw connection table.
// Returns ErrInvalidConnections on an empty table or an entry outside
// [0, inputDim).
func New(inputDim int, connections []int) (*Switchboard, error) {
	ct, err := NewConnectionTable(inputDim, connections)
	if err != nil {
		return nil, err
	}

	return &Switchboard{table: ct}, nil
}

// NewChannel builds a switchboard whose slots are grouped into channels
// of outChannelDim output slots and inChannelDim input slots.
// Returns ErrChannelGeometry for non-positive channel dimensions and
// ErrInvalidConnections for a bad table.
func NewChannel(inputDim int, connections []int, outChannelDim, inChannelDim int) (*Switchboard, error) {
	if outChannelDim < 1 || inChannelDim < 1 {
		return nil, fmt.Errorf("%w: out_channel_dim=%d in_channel_dim=%d",
			ErrChannelGeometry, outChannelDim, inChannelDim)
	}
	ct, err := NewConnectionTable(inputDim, connections)
	if err != nil {
		return nil, err
	}
	geo := &ChannelGeometry{
		OutChannelDim:  outChannelDim,
		InChannelDim:   inChannelDim,
		OutputChannels: ct.OutputDim() / outChannelDim,
	}

	return &Switchboard{table: ct, geo: geo}, nil
}

// InputDim returns the expected length of vectors passed to Apply.
func (s *Switchboard) InputDim() int { return s.table.InputDim() }

// OutputDim returns the length of vectors produced by Apply.
func (s *Switchboard) OutputDim() int { return s.table.OutputDim() }

// Connections returns a copy of the forward connection table.
func (s *Switchboard) Connections() []int { return s.table.Connections() }

// IsInvertible reports whether Unapply is available, i.e. the table is a
// permutation of the input slots.
func (s *Switchboard) IsInvertible() bool { return s.table.IsInvertible() }

// IsTrainable always reports false: a switchboard never adjusts state
// from data.
func (s *Switchboard) IsTrainable() bool { return false }

// Geometry returns the channel geometry and whether the switchboard
// carries one.
func (s *Switchboard) Geometry() (ChannelGeometry, bool) {
	if s.geo == nil {
		return ChannelGeometry{}, false
	}

	return *s.geo, true
}

// Apply routes in to a fresh output vector: output slot i receives
// in[connections[i]]. The input length must equal InputDim
// (ErrDimensionMismatch). Complexity: O(OutputDim).
func (s *Switchboard) Apply(in []float64) ([]float64, error) {
	if len(in) != s.table.inputDim {
		return nil, fmt.Errorf("%w: got vector of length %d, want input dimension %d",
			ErrDimensionMismatch, len(in), s.table.inputDim)
	}
	out := make([]float64, len(s.table.forward))
	for i, src := range s.table.forward {
		out[i] = in[src]
	}

	return out, nil
}

// Unapply routes out back through the inverse permutation. Fails with
// ErrNotInvertible when the table is not a bijection and with
// ErrDimensionMismatch when the vector length is wrong.
func (s *Switchboard) Unapply(out []float64) ([]float64, error) {
	if s.table.inverse == nil {
		return nil, ErrNotInvertible
	}
	if len(out) != s.table.OutputDim() {
		return nil, fmt.Errorf("%w: got vector of length %d, want output dimension %d",
			ErrDimensionMismatch, len(out), s.table.OutputDim())
	}
	in := make([]float64, len(s.table.inverse))
	for i, src := range s.table.inverse {
		in[i] = out[src]
	}

	return in, nil
}
