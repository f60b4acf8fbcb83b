// SPDX-License-Identifier: MIT
// Package matrix provides the in-place kernels of the transform pipeline:
// block copy, identity, scalar multiplication, and matrix multiplication
// with the result written into the right operand.
//
// Purpose:
//   - Declare canonical kernels and the operation tags used for error wrapping.
//   - Validate fully before the first write so a failed call leaves every
//     operand unchanged.
//
// Notes:
//   - Plain IEEE-754 double arithmetic; no rounding, clamping or NaN/Inf checks.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opCopy        = "CopyInto"
	opSetIdentity = "SetIdentity"
	opScalar      = "ScalarMultiply"
	opMultiply    = "Multiply"
	opProduct     = "Product"
	opIdentity    = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CopyInto overwrites the leading src.Rows()×src.Cols() block of dst with src.
// Rows and columns of dst beyond that block are left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//   - ErrShape when dst is smaller than src in either dimension.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func CopyInto(src, dst *Dense) error {
	if err := ValidateCopyTarget(src, dst); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if src == dst {
		return nil
	}
	var i int
	for i = 0; i < src.r; i++ {
		copy(dst.data[i*dst.stride:i*dst.stride+src.c], src.data[i*src.stride:i*src.stride+src.c])
	}

	return nil
}

// SetIdentity turns a square m into the identity: 1 on the diagonal, 0 elsewhere.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//   - ErrShape when m is not square; m is left unchanged.
//
// Complexity:
//   - Time O(n^2).
func SetIdentity(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSetIdentity, err)
	}
	m.zeroCols(0, m.c)
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.stride+i] = 1
	}

	return nil
}

// ScalarMultiply multiplies every logical element of m by x, in place.
// No shape precondition; an empty matrix is a no-op.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ScalarMultiply(x float64, m *Dense) error {
	if err := validateLive(m); err != nil {
		return matrixErrorf(opScalar, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.stride
		for j = 0; j < m.c; j++ {
			m.data[base+j] *= x
		}
	}

	return nil
}

// mulKernel writes a×b into out, a dense buffer of a.r rows with row stride
// b.c. Loop order i→k→j keeps both a and out row-contiguous.
// Assumes shapes were validated and out is zeroed.
func mulKernel(a, b *Dense, out []float64) {
	var (
		i, j, k          int
		rowA, rowB, rowO int
		av               float64
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.stride
		rowO = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			rowB = k * b.stride
			for j = 0; j < b.c; j++ {
				out[rowO+j] += av * b.data[rowB+j]
			}
		}
	}
}

// Multiply computes a×b and overwrites b with the result (a*b → b).
// Implementation:
//   - Stage 1: ValidateInPlaceMul (live operands, a.Cols == b.Rows,
//     a.Rows == b.Rows since b's row count is fixed).
//   - Stage 2: compute into a fresh temporary buffer; a and b are only read.
//   - Stage 3: copy the temporary into b's logical block.
//
// Behavior highlights:
//   - a is never modified; b keeps its identity, shape and backing storage,
//     so callers can hold on to b (an edge list) across many frames.
//   - a == b is allowed (squares a square matrix in place).
//   - a must be square in b's row count. Use Product when the result needs
//     a different shape than b.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrShape. On error neither operand changes.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the temporary.
func Multiply(a, b *Dense) error {
	if err := ValidateInPlaceMul(a, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}

	tmp := make([]float64, a.r*b.c)
	mulKernel(a, b, tmp)

	var i int
	for i = 0; i < b.r; i++ {
		copy(b.data[i*b.stride:i*b.stride+b.c], tmp[i*b.c:(i+1)*b.c])
	}

	return nil
}

// Product returns a new matrix C = a×b for any conformable shapes.
// Neither operand is modified.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrShape, ErrAllocation.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Product(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	res, err := New(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	mulKernel(a, b, res.data) // res.stride == b.c

	return res, nil
}
