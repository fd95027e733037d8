// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise operations over the flat row-major buffer:
//     Add, Shift, Randomize, Duplicate and Equal.
//   - All loops run flat 0..n-1; the row-major layout makes that identical to
//     the i→j order.
//
// Semantics:
//   - Arithmetic is uint32 and wraps mod 2^32.
//   - Shifts discard overflow bits; Go defines shifts by >= 32 to yield 0.
//   - Add rejects operands that differ in EITHER dimension.

package matrix

import (
	"fmt"
	"slices"
)

// Add stores a + b into result, elementwise.
// MAIN DESCRIPTION:
//   - result[i] = a[i] + b[i] (mod 2^32) for every element.
//
// Implementation:
//   - Stage 1: validate all three operands are live.
//   - Stage 2: validate a, b and result share one shape.
//   - Stage 3: single flat loop.
//
// Behavior highlights:
//   - result may alias a or b.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Add(a, b, result *Matrix) error {
	for _, m := range [...]*Matrix{a, b, result} {
		if err := ValidateLive(m); err != nil {
			return matrixErrorf(opAdd, err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, result); err != nil {
		return matrixErrorf(opAdd, fmt.Errorf("result: %w", err))
	}

	for i := range result.data {
		result.data[i] = a.data[i] + b.data[i]
	}

	return nil
}

// Shift applies v<<amount or v>>amount in place to every element of m.
//
// Errors: ErrNilMatrix, ErrReleased, ErrBadDirection.
// Complexity: O(r*c).
func Shift(m *Matrix, dir Direction, amount uint) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opShift, err)
	}

	switch dir {
	case ShiftLeft:
		for i := range m.data {
			m.data[i] <<= amount
		}
	case ShiftRight:
		for i := range m.data {
			m.data[i] >>= amount
		}
	default:
		return matrixErrorf(opShift, fmt.Errorf("%v: %w", dir, ErrBadDirection))
	}

	return nil
}

// Randomize fills m with values drawn uniformly-by-modulo from [low, high].
// MAIN DESCRIPTION:
//   - m[i] = src.Uint32() mod (high-low+1) + low, drawn independently per element.
//
// Implementation:
//   - Stage 1: validate m, src and the range; nothing is written on failure.
//   - Stage 2: compute the span in 64 bits so [0, MaxUint32] has span 2^32.
//   - Stage 3: flat loop.
//
// Determinism:
//   - Exactly as deterministic as src; seed it once per process, not per call.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNilSource, ErrInvalidRange.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Randomize(m *Matrix, low, high uint32, src Source) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opRandomize, err)
	}
	if src == nil {
		return matrixErrorf(opRandomize, ErrNilSource)
	}
	if low > high {
		return matrixErrorf(opRandomize, fmt.Errorf("[%d,%d]: %w", low, high, ErrInvalidRange))
	}

	span := uint64(high) - uint64(low) + 1
	for i := range m.data {
		m.data[i] = low + uint32(uint64(src.Uint32())%span)
	}

	return nil
}

// Duplicate copies src's buffer into dest and verifies the copy with Equal.
// dest must already exist with src's shape.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrCopyVerify.
// Complexity: O(r*c).
func Duplicate(src, dest *Matrix) error {
	if err := ValidateLive(src); err != nil {
		return matrixErrorf(opDuplicate, fmt.Errorf("src: %w", err))
	}
	if err := ValidateLive(dest); err != nil {
		return matrixErrorf(opDuplicate, fmt.Errorf("dest: %w", err))
	}
	if err := ValidateSameShape(src, dest); err != nil {
		return matrixErrorf(opDuplicate, err)
	}

	copy(dest.data, src.data)
	if !Equal(src, dest) {
		return matrixErrorf(opDuplicate, ErrCopyVerify)
	}

	return nil
}

// Equal reports whether a and b are both live, share a shape and hold
// identical buffers. Matrices whose shapes differ are never equal, even when
// rows*cols coincide.
// Complexity: O(r*c).
func Equal(a, b *Matrix) bool {
	if ValidateLive(a) != nil || ValidateLive(b) != nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	return slices.Equal(a.data, b.data)
}
