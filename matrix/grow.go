// SPDX-License-Identifier: MIT

// Package matrix - column growth policy.
//
// Purpose:
//   - Change the logical width of a Dense without touching its row count.
//   - Keep every row at the same capacity (single shared stride).
//   - Zero every cell that becomes logically visible, including cells that
//     still hold values from before an earlier shrink.
package matrix

const (
	ctxGrow    = "Grow"
	ctxReserve = "Reserve"
	ctxAppend  = "AppendCols"
)

// realloc moves the logical block into a fresh buffer with the given
// per-row capacity. The caller guarantees capacity >= m.c.
// On ErrAllocation m is unchanged.
func (m *Dense) realloc(capacity int) error {
	buf, err := allocate(m.r, capacity)
	if err != nil {
		return err
	}
	var i int
	for i = 0; i < m.r; i++ {
		copy(buf[i*capacity:i*capacity+m.c], m.data[i*m.stride:i*m.stride+m.c])
	}
	m.data = buf
	m.stride = capacity

	return nil
}

// zeroCols clears columns [from, to) of every row. Requires to <= m.stride.
func (m *Dense) zeroCols(from, to int) {
	if from >= to {
		return
	}
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.stride
		clear(m.data[base+from : base+to])
	}
}

// Grow sets the logical column count to newCols.
// Implementation:
//   - Stage 1: validate liveness and newCols >= 0.
//   - Stage 2: if newCols exceeds capacity, reallocate every row to exactly
//     newCols columns, preserving [0, oldCols).
//   - Stage 3: zero the newly exposed columns [oldCols, newCols).
//
// Behavior highlights:
//   - Shrinking (newCols < Cols) only truncates the logical width; capacity
//     is kept and retained columns are untouched.
//   - Newly exposed cells always read as 0.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrInvalidDimensions, ErrAllocation.
//     On error the matrix is unchanged.
//
// Complexity:
//   - Time O(r*newCols) when reallocating, O(r*(newCols-oldCols)) otherwise.
func (m *Dense) Grow(newCols int) error {
	if err := validateLive(m); err != nil {
		return matrixErrorf(ctxGrow, err)
	}
	if newCols < 0 {
		return matrixErrorf(ctxGrow, ErrInvalidDimensions)
	}
	if newCols > m.stride {
		if err := m.realloc(newCols); err != nil {
			return matrixErrorf(ctxGrow, err)
		}
	}
	m.zeroCols(m.c, newCols)
	m.c = newCols

	return nil
}

// Reserve ensures every row can hold at least capacity columns without a
// further reallocation. It never changes Cols and never shrinks capacity.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrInvalidDimensions, ErrAllocation.
func (m *Dense) Reserve(capacity int) error {
	if err := validateLive(m); err != nil {
		return matrixErrorf(ctxReserve, err)
	}
	if capacity < 0 {
		return matrixErrorf(ctxReserve, ErrInvalidDimensions)
	}
	if capacity <= m.stride {
		return nil
	}
	if err := m.realloc(capacity); err != nil {
		return matrixErrorf(ctxReserve, err)
	}

	return nil
}

// AppendCols extends the logical width by exactly n zeroed columns and returns
// the index of the first new column.
// Implementation:
//   - Stage 1: validate liveness and n >= 0.
//   - Stage 2: if Cols+n exceeds capacity, reallocate to
//     max(Cols+n, 2*capacity, DefaultMinCapacity) (amortized O(1) per column).
//   - Stage 3: zero the new columns and bump Cols.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrInvalidDimensions, ErrAllocation.
//     On error the matrix is unchanged.
func (m *Dense) AppendCols(n int) (int, error) {
	if err := validateLive(m); err != nil {
		return 0, matrixErrorf(ctxAppend, err)
	}
	if n < 0 {
		return 0, matrixErrorf(ctxAppend, ErrInvalidDimensions)
	}
	if n > MaxCells-m.c {
		return 0, matrixErrorf(ctxAppend, ErrAllocation)
	}
	first := m.c
	need := m.c + n
	if need > m.stride {
		capacity := max(need, 2*m.stride, DefaultMinCapacity)
		if err := m.realloc(capacity); err != nil {
			return 0, matrixErrorf(ctxAppend, err)
		}
	}
	m.zeroCols(first, need)
	m.c = need

	return first, nil
}
