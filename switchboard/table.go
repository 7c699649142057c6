package switchboard

import "fmt"

// ConnectionTable is an ordered sequence of input-slot indices, one per
// output slot, together with the derived inverse permutation when the
// mapping is a bijection. Immutable after construction.
type ConnectionTable struct {
	inputDim int
	forward  []int
	inverse  []int // nil unless the table is a permutation of [0,inputDim)
}

// NewConnectionTable validates connections against inputDim and builds
// the table. The table must be non-empty and every entry must lie in
// [0, inputDim); returns ErrInvalidConnections otherwise.
//
// The inverse permutation is derived once, here, iff
// inputDim == len(connections) and every input slot appears exactly
// once. Complexity: O(len(connections)) time and memory.
func NewConnectionTable(inputDim int, connections []int) (*ConnectionTable, error) {
	if inputDim < 1 {
		return nil, fmt.Errorf("%w: input dimension %d must be positive", ErrInvalidConnections, inputDim)
	}
	if len(connections) == 0 {
		return nil, fmt.Errorf("%w: empty connection list", ErrInvalidConnections)
	}
	forward := make([]int, len(connections))
	for i, c := range connections {
		if c < 0 || c >= inputDim {
			return nil, fmt.Errorf("%w: entry %d at output slot %d exceeds input dimension %d",
				ErrInvalidConnections, c, i, inputDim)
		}
		forward[i] = c
	}

	ct := &ConnectionTable{inputDim: inputDim, forward: forward}
	ct.inverse = invert(inputDim, forward)

	return ct, nil
}

// invert returns the inverse permutation of forward, or nil when forward
// is not a permutation of [0, inputDim).
func invert(inputDim int, forward []int) []int {
	if inputDim != len(forward) {
		return nil
	}
	inverse := make([]int, inputDim)
	seen := make([]bool, inputDim)
	for pos, v := range forward {
		if seen[v] {
			return nil
		}
		seen[v] = true
		inverse[v] = pos
	}

	return inverse
}

// InputDim returns the dimension of vectors the table routes from.
func (ct *ConnectionTable) InputDim() int { return ct.inputDim }

// OutputDim returns the dimension of vectors the table routes to.
func (ct *ConnectionTable) OutputDim() int { return len(ct.forward) }

// IsInvertible reports whether the table is a bijection of [0, inputDim).
func (ct *ConnectionTable) IsInvertible() bool { return ct.inverse != nil }

// Connections returns a copy of the forward table.
func (ct *ConnectionTable) Connections() []int {
	out := make([]int, len(ct.forward))
	copy(out, ct.forward)

	return out
}
