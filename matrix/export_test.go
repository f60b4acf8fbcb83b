// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for matrix_test.
//
// Purpose:
//   - Expose unexported constants and invariants to external tests without
//     widening the production API.

// Panic message exports to avoid "magic strings" in tests.
const PanicCapacityInvalid_TestOnly = panicCapacityInvalid

// StrideInvariant_TestOnly reports whether the backing buffer is exactly
// Rows()*Cap() cells long, i.e. every row has the same allocated capacity.
func StrideInvariant_TestOnly(m *Dense) bool {
	return len(m.data) == m.r*m.stride && m.c <= m.stride
}

// RawCell_TestOnly reads (i, j) below capacity, ignoring the logical width.
func RawCell_TestOnly(m *Dense, i, j int) float64 {
	return m.data[i*m.stride+j]
}

// BackingPtr_TestOnly returns the address of the first cell, for storage
// identity checks. Returns nil for an empty buffer.
func BackingPtr_TestOnly(m *Dense) *float64 {
	if len(m.data) == 0 {
		return nil
	}

	return &m.data[0]
}
