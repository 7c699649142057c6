package coords_test

import (
	"fmt"

	"github.com/katalvlaran/switchgrid/coords"
)

// ExampleTranslator demonstrates the two coordinate conventions on a
// 3×2 grid whose flat layout is:
//
//	0 1 2
//	3 4 5
func ExampleTranslator() {
	tr, _ := coords.New(3, 2)

	idx, _ := tr.ImageToIndex(2, 1) // x=2, y=1 — bottom-right cell
	fmt.Println("image (2,1) ->", idx)

	row, col, _ := tr.IndexToArray(idx)
	fmt.Printf("index %d -> array (%d,%d)\n", idx, row, col)

	// Output:
	// image (2,1) -> 5
	// index 5 -> array (1,2)
}
