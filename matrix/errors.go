// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels (optionally wrapped with an
// operation tag via %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; MustNew and option
// constructors panic only on programmer error.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Public
// operations wrap with "<Op>: %w"; callers match the sentinel with errors.Is.
//
// ERROR PRIORITY (checked in this order):
// nil -> released -> dimensions/allocation -> shape.

var (
	// ErrAllocation is returned when storage for a matrix (or for a Grow,
	// Reserve or AppendCols) cannot be obtained: the requested cell count
	// overflows int or exceeds MaxCells. The matrix is left untouched.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrShape indicates incompatible operand shapes: Multiply with
	// a.Cols != b.Rows, CopyInto into a smaller destination, SetIdentity on a
	// non-square matrix.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrInvalidDimensions indicates a negative row, column or capacity count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// logical bounds. At/Set/Col MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = errors.New("matrix: use after release")
)
