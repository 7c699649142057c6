// Package coords translates between 2D grid coordinates and row-major
// flat indices, in both the image and the array convention.
//
// What:
//
//   - Translator maps (x,y) image coordinates or (row,col) array
//     coordinates to a flat index y*XDim+x and back.
//   - Image convention: first coordinate is x (the column), origin
//     top-left, y grows downward. Array convention: first coordinate is
//     the row. ImageToArray/ArrayToImage convert between the two.
//
// Why:
//
//   - Tiling generators address input channels by grid position but emit
//     flat slot indices; one shared translator keeps that arithmetic
//     off-by-one free.
//
// Complexity: every operation is O(1); a Translator holds nothing but
// its two dimensions and is safe to copy and share.
//
// Errors:
//
//   - ErrOutOfRange: a coordinate, index, or constructor dimension lies
//     outside the valid range.
package coords
