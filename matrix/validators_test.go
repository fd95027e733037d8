// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	shaped := func(r, c uint32) *matrix.Matrix {
		return MustNew(t, "s", r, c)
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", shaped(2, 3), shaped(2, 3), nil},
		{"equal 0x4", shaped(0, 4), shaped(0, 4), nil},
		{"row mismatch", shaped(2, 3), shaped(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", shaped(2, 3), shaped(2, 4), matrix.ErrDimensionMismatch},
		{"same count transposed", shaped(2, 3), shaped(3, 2), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateLive covers nil, released and live matrices.
func TestValidateLive(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateLive(nil), matrix.ErrNilMatrix)

	m := MustNew(t, "live", 1, 1)
	require.NoError(t, matrix.ValidateLive(m))

	m.Release()
	require.ErrorIs(t, matrix.ValidateLive(m), matrix.ErrReleased)
}

// TestValidateName checks the boundary at NameCapacity-1 bytes and NUL bytes.
func TestValidateName(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateName(""))
	require.NoError(t, matrix.ValidateName(strings.Repeat("a", matrix.NameCapacity-1)))
	require.ErrorIs(t, matrix.ValidateName(strings.Repeat("a", matrix.NameCapacity)), matrix.ErrNameTooLong)

	for _, name := range []string{"\x00", "a\x00b", "tail\x00"} {
		require.ErrorIs(t, matrix.ValidateName(name), matrix.ErrInvalidName, "%q", name)
		_, err := matrix.New(name, 1, 1)
		require.ErrorIs(t, err, matrix.ErrInvalidName, "%q", name)
	}
	require.NoError(t, matrix.ValidateName("with space and \xff"))
}
