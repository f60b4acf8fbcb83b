// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for liveness and shape checks.
//  - Keep kernels minimal by delegating nil/released/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Live → Shape.
//  - Every check runs before any mutation, so a failed call leaves all
//    operands unchanged.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateLive reports ErrNilMatrix for a nil *Dense and ErrReleased for a
// released one. It is the first step of every composite validator.
func validateLive(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.released {
		return ErrReleased
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok {
		if err := validateLive(d); err != nil {
			return validatorErrorf("ValidateNotNil", err)
		}
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal logical dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShape)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShape)
	}

	return nil
}

// ValidateSquare checks that m is live and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrReleased, ErrShape.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := validateLive(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrShape)
	}

	return nil
}

// ValidateMulCompatible – Ensures both operands are live and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrReleased, ErrShape.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := validateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := validateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrShape)
	}

	return nil
}

// ValidateInPlaceMul – ValidateMulCompatible plus a.Rows == b.Rows, which the
// right-hand accumulator of Multiply needs because its row count is fixed.
//
// Errors: ErrNilMatrix, ErrReleased, ErrShape.
// Complexity: O(1).
func ValidateInPlaceMul(a, b *Dense) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateInPlaceMul", ErrShape)
	}

	return nil
}

// ValidateCopyTarget – Ensures src and dst are live and dst is at least as
// large as src in both dimensions.
//
// Errors: ErrNilMatrix, ErrReleased, ErrShape.
// Complexity: O(1).
func ValidateCopyTarget(src, dst *Dense) error {
	if err := validateLive(src); err != nil {
		return validatorErrorf("ValidateCopyTarget", err)
	}
	if err := validateLive(dst); err != nil {
		return validatorErrorf("ValidateCopyTarget", err)
	}
	if dst.r < src.r {
		return validatorErrorf("ValidateCopyTarget: Rows", ErrShape)
	}
	if dst.c < src.c {
		return validatorErrorf("ValidateCopyTarget: Columns", ErrShape)
	}

	return nil
}
