// SPDX-License-Identifier: MIT

// Package matrix - entity storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a flat []uint32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make "released" a checked state: every accessor rejects a released Matrix.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Data/Load: O(r*c); Release: O(1).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	opNew       = "New"
	opRelease   = "Release"
	opAt        = "At"
	opSet       = "Set"
	opLoad      = "Load"
	opAdd       = "Add"
	opShift     = "Shift"
	opRandomize = "Randomize"
	opDuplicate = "Duplicate"
	opDisplay   = "Display"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with the accessor name and coordinates.
func denseErrorf(method string, row, col uint32, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a named, row-major matrix of uint32 values.
//   - rows, cols are fixed at creation.
//   - data holds rows*cols elements; offset of (i,j) is i*cols + j.
//   - released is set by Release; the buffer is dropped at the same time.
type Matrix struct {
	name     string   // advisory identifier, len(name)+1 <= NameCapacity
	rows     uint32   // row count
	cols     uint32   // column count
	data     []uint32 // contiguous row-major storage (len == rows*cols)
	released bool     // true after Release; all operations then fail
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix called name.
// MAIN DESCRIPTION:
//   - Public factory with name and size validation.
//
// Implementation:
//   - Stage 1: validate the name against NameCapacity.
//   - Stage 2: compute rows*cols in 64 bits and reject anything above MaxElements.
//   - Stage 3: allocate the zero-filled buffer.
//
// Behavior highlights:
//   - 0×N and N×0 are legal and carry an empty buffer.
//
// Errors:
//   - ErrNameTooLong, ErrInvalidName, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(name string, rows, cols uint32) (*Matrix, error) {
	if err := ValidateName(name); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	n := uint64(rows) * uint64(cols)
	if n > MaxElements {
		return nil, matrixErrorf(opNew, fmt.Errorf("%d×%d: %w", rows, cols, ErrAllocation))
	}

	return &Matrix{
		name: name,
		rows: rows,
		cols: cols,
		data: make([]uint32, n),
	}, nil
}

// Release frees m. A nil m returns ErrNilMatrix; releasing twice is a no-op.
func Release(m *Matrix) error {
	if m == nil {
		return matrixErrorf(opRelease, ErrNilMatrix)
	}
	m.Release()

	return nil
}

// Release drops the buffer and marks m released. Calling it on a nil or
// already-released Matrix does nothing.
func (m *Matrix) Release() {
	if m == nil || m.released {
		return
	}
	m.data = nil
	m.released = true
}

// Released reports whether Release has been called.
func (m *Matrix) Released() bool { return m.released }

// Name returns the matrix name.
func (m *Matrix) Name() string { return m.name }

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() uint32 { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() uint32 { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols uint32) { return m.rows, m.cols }

// Len returns rows*cols, the element count of the buffer.
func (m *Matrix) Len() int { return int(uint64(m.rows) * uint64(m.cols)) }

// indexOf bounds-checks (row,col) and returns the row-major offset.
func (m *Matrix) indexOf(row, col uint32) (int, error) {
	if row >= m.rows || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return int(row)*int(m.cols) + int(col), nil
}

// At returns the element at (row, col).
// Errors: ErrReleased, ErrOutOfRange.
func (m *Matrix) At(row, col uint32) (uint32, error) {
	if m.released {
		return 0, denseErrorf(opAt, row, col, ErrReleased)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(opAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrReleased, ErrOutOfRange.
func (m *Matrix) Set(row, col, v uint32) error {
	if m.released {
		return denseErrorf(opSet, row, col, ErrReleased)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(opSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Data returns a copy of the row-major buffer, or nil once released.
func (m *Matrix) Data() []uint32 {
	if m.released {
		return nil
	}
	cp := make([]uint32, len(m.data))
	copy(cp, m.data)

	return cp
}

// Load copies data into the buffer. len(data) must equal Len().
// Errors: ErrReleased, ErrDimensionMismatch.
func (m *Matrix) Load(data []uint32) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opLoad, err)
	}
	if len(data) != len(m.data) {
		return matrixErrorf(opLoad, fmt.Errorf("have %d elements, want %d: %w", len(data), len(m.data), ErrDimensionMismatch))
	}
	copy(m.data, data)

	return nil
}
