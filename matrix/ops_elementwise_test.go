// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

// --- Add ----------------------------------------------------------------------

func TestAdd_Elementwise(t *testing.T) {
	t.Parallel()
	a := NewFilled(t, "a", 2, 2, []uint32{1, 2, 3, 4})
	b := NewFilled(t, "b", 2, 2, []uint32{10, 20, 30, math.MaxUint32})
	c := MustNew(t, "c", 2, 2)

	require.NoError(t, matrix.Add(a, b, c))
	// 4 + MaxUint32 wraps to 3.
	require.Equal(t, []uint32{11, 22, 33, 3}, c.Data())
}

func TestAdd_AliasResult(t *testing.T) {
	t.Parallel()
	a := NewFilled(t, "a", 1, 3, []uint32{1, 2, 3})
	require.NoError(t, matrix.Add(a, a, a))
	require.Equal(t, []uint32{2, 4, 6}, a.Data())
}

func TestAdd_ShapeMismatch_EitherDimension(t *testing.T) {
	t.Parallel()
	a := MustNew(t, "a", 2, 3)
	cases := []struct {
		name       string
		rows, cols uint32
	}{
		{"rows differ", 3, 3},
		{"cols differ", 2, 4},
		{"both differ", 3, 2},
	}
	for _, tc := range cases {
		b := MustNew(t, "b", tc.rows, tc.cols)
		c := MustNew(t, "c", 2, 3)
		require.ErrorIs(t, matrix.Add(a, b, c), matrix.ErrDimensionMismatch, tc.name)
	}

	// Result shape is validated as well.
	b := MustNew(t, "b", 2, 3)
	require.ErrorIs(t, matrix.Add(a, b, MustNew(t, "c", 3, 2)), matrix.ErrDimensionMismatch)
}

func TestAdd_NilAndReleased(t *testing.T) {
	t.Parallel()
	a := MustNew(t, "a", 1, 1)
	b := MustNew(t, "b", 1, 1)
	require.ErrorIs(t, matrix.Add(nil, b, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Add(a, nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Add(a, b, nil), matrix.ErrNilMatrix)

	b.Release()
	require.ErrorIs(t, matrix.Add(a, b, a), matrix.ErrReleased)
}

// --- Shift --------------------------------------------------------------------

func TestShift_LeftRight(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "s", 1, 3, []uint32{1, 3, 0x80000001})
	require.NoError(t, matrix.Shift(m, matrix.ShiftLeft, 1))
	// The high bit of 0x80000001 is discarded, not wrapped.
	require.Equal(t, []uint32{2, 6, 2}, m.Data())

	require.NoError(t, matrix.Shift(m, matrix.ShiftRight, 1))
	require.Equal(t, []uint32{1, 3, 1}, m.Data())
}

func TestShift_InverseAndIdentity(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	for k := uint(0); k < 32; k++ {
		m := MustNew(t, "inv", 4, 4)
		// Every element < 2^(32-k) survives a left/right round trip.
		require.NoError(t, matrix.Randomize(m, 0, uint32((uint64(1)<<(32-k))-1), rng))
		orig := m.Data()

		require.NoError(t, matrix.Shift(m, matrix.ShiftLeft, k))
		require.NoError(t, matrix.Shift(m, matrix.ShiftRight, k))
		require.Equal(t, orig, m.Data(), "k=%d", k)
	}

	m := NewFilled(t, "id", 1, 2, []uint32{5, 9})
	require.NoError(t, matrix.Shift(m, matrix.ShiftRight, 0))
	require.Equal(t, []uint32{5, 9}, m.Data())
}

func TestShift_WideAmountClears(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "w", 1, 2, []uint32{math.MaxUint32, 1})
	require.NoError(t, matrix.Shift(m, matrix.ShiftLeft, 32))
	require.Equal(t, []uint32{0, 0}, m.Data())
}

func TestShift_BadDirection(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "d", 1, 1, []uint32{4})
	require.ErrorIs(t, matrix.Shift(m, matrix.Direction(9), 1), matrix.ErrBadDirection)
	require.Equal(t, []uint32{4}, m.Data())
	require.ErrorIs(t, matrix.Shift(nil, matrix.ShiftLeft, 1), matrix.ErrNilMatrix)
}

// --- Randomize ----------------------------------------------------------------

func TestRandomize_Bounds(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 7))
	m := MustNew(t, "r", 8, 8)
	require.NoError(t, matrix.Randomize(m, 10, 15, rng))
	for _, v := range m.Data() {
		require.GreaterOrEqual(t, v, uint32(10))
		require.LessOrEqual(t, v, uint32(15))
	}
}

func TestRandomize_ModuloFormula(t *testing.T) {
	t.Parallel()
	src := &seqSource{vals: []uint32{0, 5, 6, 13}}
	m := MustNew(t, "f", 1, 4)
	// value = v mod (15-10+1) + 10
	require.NoError(t, matrix.Randomize(m, 10, 15, src))
	require.Equal(t, []uint32{10, 15, 10, 11}, m.Data())
}

func TestRandomize_FullRangeAndSinglePoint(t *testing.T) {
	t.Parallel()
	src := &seqSource{vals: []uint32{math.MaxUint32, 0, 123}}
	m := MustNew(t, "full", 1, 3)
	require.NoError(t, matrix.Randomize(m, 0, math.MaxUint32, src))
	require.Equal(t, []uint32{math.MaxUint32, 0, 123}, m.Data())

	require.NoError(t, matrix.Randomize(m, 7, 7, src))
	require.Equal(t, []uint32{7, 7, 7}, m.Data())
}

func TestRandomize_InvalidRangeLeavesMatrix(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "keep", 1, 2, []uint32{1, 2})
	err := matrix.Randomize(m, 5, 4, &seqSource{vals: []uint32{0}})
	require.ErrorIs(t, err, matrix.ErrInvalidRange)
	require.Equal(t, []uint32{1, 2}, m.Data())

	require.ErrorIs(t, matrix.Randomize(m, 0, 1, nil), matrix.ErrNilSource)
}

// --- Duplicate / Equal --------------------------------------------------------

func TestDuplicate_CopiesAndVerifies(t *testing.T) {
	t.Parallel()
	src := NewFilled(t, "src", 2, 2, []uint32{4, 3, 2, 1})
	dst := MustNew(t, "dst", 2, 2)
	require.NoError(t, matrix.Duplicate(src, dst))
	require.True(t, matrix.Equal(src, dst))
	require.Equal(t, "dst", dst.Name())

	// Independent buffers after the copy.
	require.NoError(t, dst.Set(0, 0, 100))
	require.False(t, matrix.Equal(src, dst))
}

func TestDuplicate_Errors(t *testing.T) {
	t.Parallel()
	src := MustNew(t, "src", 2, 2)
	require.ErrorIs(t, matrix.Duplicate(src, MustNew(t, "d", 4, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Duplicate(nil, src), matrix.ErrNilMatrix)

	dst := MustNew(t, "d", 2, 2)
	dst.Release()
	require.ErrorIs(t, matrix.Duplicate(src, dst), matrix.ErrReleased)
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := NewFilled(t, "a", 2, 3, []uint32{1, 2, 3, 4, 5, 6})
	b := NewFilled(t, "b", 2, 3, []uint32{1, 2, 3, 4, 5, 6})
	require.True(t, matrix.Equal(a, b), "names are not compared")

	// Same element count and bytes, different layout: not equal.
	c := NewFilled(t, "c", 3, 2, []uint32{1, 2, 3, 4, 5, 6})
	require.False(t, matrix.Equal(a, c))

	require.False(t, matrix.Equal(a, nil))
	require.False(t, matrix.Equal(nil, nil))

	b.Release()
	require.False(t, matrix.Equal(a, b))

	e1, e2 := MustNew(t, "e1", 0, 3), MustNew(t, "e2", 0, 3)
	require.True(t, matrix.Equal(e1, e2))
}

// --- Display ------------------------------------------------------------------

func TestDisplay_Format(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "temp_mat", 2, 2, []uint32{1, 22, 333, 4})
	var sb strings.Builder
	require.NoError(t, matrix.Display(&sb, m))

	want := "\nMatrix Contents (temp_mat):\nDIM = (2,2)\n1 22 \n333 4 \n\n"
	require.Equal(t, want, sb.String())
	require.Equal(t, want, m.String())
}

func TestDisplay_Released(t *testing.T) {
	t.Parallel()
	m := MustNew(t, "gone", 1, 1)
	m.Release()
	var sb strings.Builder
	require.ErrorIs(t, matrix.Display(&sb, m), matrix.ErrReleased)
	require.Empty(t, sb.String())
	require.Equal(t, "\nMatrix Contents (gone):\nDIM = (1,1)\n\n", m.String())
}
