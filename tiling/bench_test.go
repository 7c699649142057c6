package tiling_test

import (
	"testing"

	"github.com/katalvlaran/switchgrid/tiling"
)

// BenchmarkRectangular measures table generation for overlapping 8×8
// fields at spacing 4 over a 256×256 grid.
// Complexity: O(output_dim).
func BenchmarkRectangular(b *testing.B) {
	cfg := tiling.RectConfig{
		XInChannels: 256, YInChannels: 256,
		XFieldChannels: 8, YFieldChannels: 8,
		XFieldSpacing: 4, YFieldSpacing: 4,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tiling.Rectangular(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDoubleRect measures double-cover generation over a 256×256
// grid with 8×8 fields.
func BenchmarkDoubleRect(b *testing.B) {
	cfg := tiling.DoubleRectConfig{
		XInChannels: 256, YInChannels: 256,
		XFieldChannels: 8, YFieldChannels: 8,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tiling.DoubleRect(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDoubleRhomb measures diamond-tiling generation over a 65×64
// long grid with edge-4 diamonds.
func BenchmarkDoubleRhomb(b *testing.B) {
	cfg := tiling.DoubleRhombConfig{
		XLongInChannels: 65, YLongInChannels: 64,
		DiagFieldChannels: 4,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tiling.DoubleRhomb(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
