// Package switchgrid computes static routing maps that wire layers of a
// hierarchical signal-processing network together — pure index
// permutation/replication, no arithmetic on the data.
//
// 🚀 What is switchgrid?
//
//	A small, deterministic library that turns grid geometry into
//	connection tables and applies them:
//		• coords      — 2D grid ↔ flat index translation (image & array conventions)
//		• switchboard — connection tables, inverse routing, channel queries
//		• tiling      — overlapping rectangular, offset double-cover and
//		                rotated-diamond field generators
//
// ✨ Why choose switchgrid?
//
//   - Exact integer geometry – overlapping tilings validated for full
//     border coverage, fail-fast construction, no silent truncation
//   - Immutable switchboards – safe to share read-only across goroutines,
//     batch routing parallelized across rows
//   - Pure routing – apply/unapply only select indices; the data itself
//     is never transformed
//
// A 6×4 input grid covered by 2×2 fields at spacing 2 yields six output
// channels of four slots each:
//
//	1 1 2 2 3 3
//	1 1 2 2 3 3
//	4 4 5 5 6 6
//	4 4 5 5 6 6
//
// The cmd/switchgrid CLI builds the same tables from flags or TOML
// geometry files and renders coverage maps for eyeballing border loss.
//
//	go get github.com/katalvlaran/switchgrid
package switchgrid
