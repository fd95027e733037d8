// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in shell
// output and logs. Operations wrap with matrixErrorf("<Op>", ErrX); callers
// still match with errors.Is.

var (
	// ErrAllocation is returned when rows*cols exceeds MaxElements.
	ErrAllocation = errors.New("matrix: buffer allocation failed")

	// ErrNameTooLong is returned when len(name)+1 exceeds NameCapacity.
	ErrNameTooLong = errors.New("matrix: name too long")

	// ErrInvalidName is returned for a name containing a NUL byte, which the
	// on-disk terminator cannot represent.
	ErrInvalidName = errors.New("matrix: name contains NUL byte")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a Matrix after Release.
	ErrReleased = errors.New("matrix: matrix already released")

	// ErrInvalidRange is returned by Randomize when low > high.
	ErrInvalidRange = errors.New("matrix: invalid range, low > high")

	// ErrNilSource is returned by Randomize when no random source is supplied.
	ErrNilSource = errors.New("matrix: nil random source")

	// ErrDimensionMismatch indicates operands of different shapes
	// (Add, Duplicate, Load).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadDirection is returned for a shift direction other than left/right.
	ErrBadDirection = errors.New("matrix: invalid shift direction")

	// ErrCopyVerify is returned by Duplicate when the post-copy comparison
	// disagrees with the source. It signals an internal fault.
	ErrCopyVerify = errors.New("matrix: copy verification failed")
)
