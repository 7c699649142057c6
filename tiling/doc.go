// Package tiling generates connection tables for 2D field tilings —
// the geometric heart of switchgrid.
//
// What:
//
//   - Rectangular: regular, possibly overlapping rectangular fields over
//     a 2D channel grid; one output channel per field placement.
//   - DoubleRect: two interleaved rectangular tilings (aligned "long
//     rows", then offset by half a field — "short rows"), covering every
//     interior channel exactly twice. The output forms a rhombic
//     lattice, not a rectangular grid.
//   - DoubleRhomb: 45°-rotated diamond fields tiled twice over the
//     rhombic layout produced by DoubleRect.
//
// Each tiler is a one-shot pure function (config) → layout. The layout
// embeds a *switchboard.Switchboard, so Apply/Unapply and the channel
// queries are available directly on it, alongside the derived grid
// attributes (output channels per axis, uncovered border channels).
//
// Why:
//
//   - Hierarchical networks (e.g. image pyramids) route overlapping
//     neighborhoods of one layer into the channels of the next; the
//     tilings here express the standard rectangular and double-cover
//     topologies without hand-writing index tables.
//
// Complexity: every generator runs in O(output_dim) time and memory and
// is executed exactly once at construction.
//
// Errors (all construction-time, fail-fast):
//
//   - ErrBadGeometry: non-positive grid, field, spacing, or channel dims.
//   - ErrFieldTooLarge: field exceeds the grid on an axis.
//   - ErrIncompleteCoverage: tiling leaves channels unrouted and
//     IgnoreCover is false.
//   - ErrOddFieldSize: double-cover tiler got an odd field dimension.
//   - ErrShortRowDegenerate: offset rows would equal the aligned rows.
//   - ErrIncompatibleFieldSize: diamond size does not divide the
//     placement range.
package tiling
