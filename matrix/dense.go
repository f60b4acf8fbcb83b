// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, strided) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the index formula i*stride + j,
//     where stride is the allocated column capacity shared by every row.
//   - Keep the logical width (cols) separate from capacity so columns can be
//     appended without reallocating on every call.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(r*cap) zero-init; At/Set: O(1); Clone: O(r*cap); Col: O(r).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a growable row-major matrix.
//   - r is the row count, fixed at creation.
//   - c is the logical column count (the number of columns in use).
//   - stride is the allocated capacity of every row (stride >= c).
//   - data holds r*stride cells; cell (i,j) lives at data[i*stride+j].
//
// A Dense has exactly one owner. Mutating operations (Grow, AppendCols,
// Multiply as the right operand, ScalarMultiply, SetIdentity) work in place.
type Dense struct {
	r, c     int       // rows (fixed) and logical cols
	stride   int       // allocated cols per row
	data     []float64 // contiguous storage (len == r*stride)
	released bool      // set by Release; every later use fails with ErrReleased
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// allocate returns a zeroed buffer for rows×capacity cells or ErrAllocation
// when the product overflows or exceeds MaxCells.
func allocate(rows, capacity int) ([]float64, error) {
	if rows < 0 || capacity < 0 {
		return nil, ErrInvalidDimensions
	}
	if rows != 0 && capacity > MaxCells/rows {
		return nil, ErrAllocation
	}

	return make([]float64, rows*capacity), nil
}

// New creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options; capacity = max(cols, WithCapacity).
//   - Stage 3: allocate a zero-filled buffer of rows*capacity cells.
//
// Behavior highlights:
//   - Zero-sized shapes are legal: an empty edge list is a 4×0 matrix.
//   - Contents are always zero (Go allocation); callers may rely on it.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrAllocation (rows*capacity overflows or exceeds MaxCells).
//
// Complexity:
//   - Time O(r*cap), Space O(r*cap).
func New(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	capacity := max(cols, o.capacity)

	buf, err := allocate(rows, capacity)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, stride: capacity, data: buf}, nil
}

// MustNew is like New but panics on error. Intended for fixed, known-good
// shapes (e.g. the 4×4 transform factories).
func MustNew(rows, cols int, opts ...Option) *Dense {
	m, err := New(rows, cols, opts...)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustNew(%d,%d): %v", rows, cols, err))
	}

	return m
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the logical column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Cap returns the allocated per-row capacity (always >= Cols).
func (m *Dense) Cap() int { return m.stride }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.released }

// Release drops the storage owned by m. Every later operation on m fails with
// ErrReleased; a second Release is a no-op. Release on a nil *Dense is a no-op.
func (m *Dense) Release() {
	if m == nil || m.released {
		return
	}
	m.data = nil
	m.c, m.stride = 0, 0
	m.released = true
}

// indexOf computes the strided offset or returns a sentinel.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.released {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.stride + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange / ErrReleased.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange / ErrReleased.
// No NaN/Inf policy: values are stored as given.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Col returns a copy of column j (length Rows()).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if m.released {
		return nil, denseErrorf(ctxCol, 0, j, ErrReleased)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.stride+j]
	}

	return out, nil
}

// Clone returns a deep copy with the same shape and capacity.
// Cloning a released matrix yields another released matrix.
// Complexity: O(r*cap).
func (m *Dense) Clone() *Dense {
	if m.released {
		return &Dense{r: m.r, released: true}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, stride: m.stride, data: cp}
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Only the logical columns are shown.
func (m *Dense) String() string {
	if m.released {
		return "[released]\n"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.stride
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each logical element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Does nothing on a released matrix.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	if m.released {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.stride
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
