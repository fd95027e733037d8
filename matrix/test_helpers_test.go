// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the entity and its operations.
//   • Keep random sources scripted so expectations are exact.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

// MustNew ALLOCATES a rows×cols matrix or fails the test.
func MustNew(t *testing.T, name string, rows, cols uint32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(name, rows, cols)
	require.NoError(t, err)

	return m
}

// NewFilled allocates rows×cols and loads vals (row-major).
func NewFilled(t *testing.T, name string, rows, cols uint32, vals []uint32) *matrix.Matrix {
	t.Helper()
	m := MustNew(t, name, rows, cols)
	require.NoError(t, m.Load(vals))

	return m
}

// seqSource replays a fixed script of Uint32 values, cycling when exhausted.
type seqSource struct {
	vals []uint32
	i    int
}

func (s *seqSource) Uint32() uint32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++

	return v
}
