// Package switchboard routes a flat input vector to a flat output vector
// through a fixed connection table — pure index selection, one entry per
// output slot naming the input slot that feeds it.
//
// What:
//
//   - ConnectionTable validates a raw index table against an input
//     dimension and derives the inverse permutation when the mapping is
//     a bijection.
//   - Switchboard wraps a table, optionally with ChannelGeometry that
//     groups slots into fixed-size channels, and applies the routing to
//     single vectors or row batches.
//
// Why:
//
//   - Hierarchical networks wire layers by neighborhood; expressing the
//     wiring as one immutable table keeps data movement trivial and
//     fully deterministic.
//   - Channel geometry answers "which input channels feed this output
//     channel" without re-deriving the tiling.
//
// Complexity:
//
//   - Construction: O(output_dim) validation + O(input_dim) inverse.
//   - Apply/Unapply: O(output_dim) per vector; batches route rows in
//     parallel (errgroup, bounded by GOMAXPROCS).
//
// Concurrency: a Switchboard is immutable after construction and safe
// for concurrent use from any number of goroutines.
//
// Errors:
//
//   - ErrInvalidConnections: empty table or entry outside [0, input_dim).
//   - ErrNotInvertible: Unapply on a non-bijective mapping.
//   - ErrDimensionMismatch: vector length does not match the table.
//   - ErrChannelGeometry: non-positive channel dimensions.
//   - ErrNoChannelGeometry: channel query on a flat switchboard.
//   - ErrChannelIndex: output-channel index out of range.
package switchboard
