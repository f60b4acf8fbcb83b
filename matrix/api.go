// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks (identity, comparison, dump).
//   - Avoid logic duplication: each facade delegates to a canonical kernel.

package matrix

import (
	"fmt"
	"io"
	"math"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if err = SetIdentity(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return m, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= tol. A negative tol is treated as |tol|.
//
// Errors:
//   - ErrNilMatrix / ErrReleased for unusable operands.
//   - ErrShape when shapes differ.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	tol = math.Abs(tol)

	var i, j int
	var av, bv float64
	r, c := a.Rows(), a.Cols()
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j) // bounds already validated
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= tol) { // NaN never compares close
				return false, nil
			}
		}
	}

	return true, nil
}

// Fprint writes m to w one row per line, each cell formatted as "%f ".
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Fprint", err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if _, err := fmt.Fprintf(w, "%f ", v); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
