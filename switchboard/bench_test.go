package switchboard_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/switchgrid/switchboard"
)

// randomPermutationBoard builds an n-slot permutation switchboard from a
// deterministic shuffle.
func randomPermutationBoard(b *testing.B, n int) *switchboard.Switchboard {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	perm := rng.Perm(n)
	sb, err := switchboard.New(n, perm)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	return sb
}

// BenchmarkApply measures single-vector routing through a 65536-slot
// permutation. Complexity: O(n) per call.
func BenchmarkApply(b *testing.B) {
	const n = 1 << 16
	sb := randomPermutationBoard(b, n)
	in := make([]float64, n)
	for i := range in {
		in[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sb.Apply(in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApplyBatch measures row-parallel routing of 256 rows through
// a 4096-slot permutation.
func BenchmarkApplyBatch(b *testing.B) {
	const (
		n    = 1 << 12
		rows = 256
	)
	sb := randomPermutationBoard(b, n)
	batch := make([][]float64, rows)
	for r := range batch {
		row := make([]float64, n)
		for i := range row {
			row[i] = float64(r + i)
		}
		batch[r] = row
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sb.ApplyBatch(batch); err != nil {
			b.Fatal(err)
		}
	}
}
