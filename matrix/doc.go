// SPDX-License-Identifier: MIT

// Package matrix is the numeric substrate of the wireframe pipeline: a
// growable, row-major dense matrix of float64 values plus the handful of
// kernels needed to compose and apply affine transforms.
//
// The package provides:
//
//   - Dense, a contiguous buffer with row stride equal to the allocated
//     column capacity. The logical column count (Cols) can be grown or
//     truncated without touching the row count.
//   - CopyInto, SetIdentity, ScalarMultiply and Multiply, the in-place
//     operations the transform pipeline is built on. Multiply(a, b)
//     overwrites b with a×b and keeps b's storage.
//   - Product for out-of-place multiplication of arbitrary conformable shapes.
//
// Every shape problem is reported before any mutation, through sentinel
// errors that match with errors.Is (ErrShape, ErrAllocation, ...). No
// function in this package logs, retries or substitutes defaults.
//
// A Dense is owned by exactly one caller and is not safe for concurrent
// mutation. Release drops its storage; any later use returns ErrReleased.
package matrix
