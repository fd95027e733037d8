// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep operations minimal by delegating nil/released/shape/name checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Note:
//  - Composite checks follow a fixed sequence: NotNil → Live → Shape.

package matrix

import (
	"fmt"
	"strings"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateName ensures len(name)+1 fits NameCapacity and name holds no NUL.
// Complexity: O(len(name)).
func ValidateName(name string) error {
	if len(name)+1 > NameCapacity {
		return validatorErrorf("ValidateName", fmt.Errorf("%d bytes, max %d: %w", len(name), NameCapacity-1, ErrNameTooLong))
	}
	if i := strings.IndexByte(name, 0); i >= 0 {
		return validatorErrorf("ValidateName", fmt.Errorf("NUL at byte %d: %w", i, ErrInvalidName))
	}

	return nil
}

// ValidateLive ensures m is non-nil and not released.
//
// Returns ErrNilMatrix or ErrReleased.
// Complexity: O(1).
func ValidateLive(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if m.released {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal rows AND equal cols.
// Either dimension differing is a mismatch.
//
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
