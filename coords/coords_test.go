package coords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/switchgrid/coords"
)

// TestNew_BadDimensions verifies that non-positive grid dimensions are rejected.
func TestNew_BadDimensions(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"ZeroX", 0, 3},
		{"ZeroY", 3, 0},
		{"NegativeX", -1, 3},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coords.New(tc.x, tc.y)
			assert.ErrorIs(t, err, coords.ErrOutOfRange)
		})
	}
}

// TestImageToIndex_RowMajor checks the flat layout of a 3×2 grid:
//
//	0 1 2
//	3 4 5
func TestImageToIndex_RowMajor(t *testing.T) {
	tr, err := coords.New(3, 2)
	require.NoError(t, err)

	want := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			idx, err := tr.ImageToIndex(x, y)
			require.NoError(t, err)
			assert.Equal(t, want, idx, "ImageToIndex(%d,%d)", x, y)
			want++
		}
	}
}

// TestImageToIndex_OutOfRange verifies coordinate bounds checking.
func TestImageToIndex_OutOfRange(t *testing.T) {
	tr, err := coords.New(3, 2)
	require.NoError(t, err)

	bad := [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}, {3, 2}}
	for _, xy := range bad {
		_, err := tr.ImageToIndex(xy[0], xy[1])
		assert.ErrorIs(t, err, coords.ErrOutOfRange, "ImageToIndex(%d,%d)", xy[0], xy[1])
	}
}

// TestImageRoundTrip verifies IndexToImage(ImageToIndex(x,y)) == (x,y)
// for every cell of a 5×4 grid.
func TestImageRoundTrip(t *testing.T) {
	tr, err := coords.New(5, 4)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			idx, err := tr.ImageToIndex(x, y)
			require.NoError(t, err)
			gx, gy, err := tr.IndexToImage(idx)
			require.NoError(t, err)
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
}

// TestArrayRoundTrip verifies ArrayToIndex(IndexToArray(i)) == i for all
// valid flat indices, and that the array convention swaps axes.
func TestArrayRoundTrip(t *testing.T) {
	tr, err := coords.New(5, 4)
	require.NoError(t, err)

	for i := 0; i < tr.Size(); i++ {
		row, col, err := tr.IndexToArray(i)
		require.NoError(t, err)
		back, err := tr.ArrayToIndex(row, col)
		require.NoError(t, err)
		assert.Equal(t, i, back)

		// Same cell through the image convention.
		x, y := tr.ArrayToImage(row, col)
		idx, err := tr.ImageToIndex(x, y)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

// TestIndexToImage_OutOfRange verifies flat-index bounds checking.
func TestIndexToImage_OutOfRange(t *testing.T) {
	tr, err := coords.New(3, 2)
	require.NoError(t, err)

	for _, idx := range []int{-1, 6, 100} {
		_, _, err := tr.IndexToImage(idx)
		assert.ErrorIs(t, err, coords.ErrOutOfRange, "IndexToImage(%d)", idx)
		_, _, err = tr.IndexToArray(idx)
		assert.ErrorIs(t, err, coords.ErrOutOfRange, "IndexToArray(%d)", idx)
	}
}

// TestConventionSwap verifies ImageToArray and ArrayToImage are inverses.
func TestConventionSwap(t *testing.T) {
	tr, err := coords.New(4, 3)
	require.NoError(t, err)

	row, col := tr.ImageToArray(2, 1)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	x, y := tr.ArrayToImage(row, col)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}
