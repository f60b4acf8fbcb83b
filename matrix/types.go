// SPDX-License-Identifier: MIT

// Package matrix: read-only matrix surface shared by Dense and helpers such as
// AllClose and Fprint.
package matrix

// Matrix is the read-only view of a two-dimensional float64 array.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the logical number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
