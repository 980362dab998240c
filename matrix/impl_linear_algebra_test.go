// SPDX-License-Identifier: MIT
// Package matrix_test: kernels Add/Sub/Mul/Transpose/Scale/Hadamard/Equal,
// each checked on the packed fast path and on the At/Set fallback.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genstore/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{10, 20}, {30, 40}})

	sum, err := matrix.Add[int](a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{11, 22}, {33, 44}}, rowsOf[int](t, sum))

	slow, err := matrix.Add[int](hide[int]{a}, b)
	require.NoError(t, err)
	eq, err := matrix.Equal[int](sum, slow)
	require.NoError(t, err)
	require.True(t, eq)

	diff, err := matrix.Sub[int](b, hide[int]{a})
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 18}, {27, 36}}, rowsOf[int](t, diff))
}

func TestAddShapeMismatch(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}})
	b := mustRows(t, [][]int{{1}, {2}})

	_, err := matrix.Add[int](a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub[int](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulTransposeProduct(t *testing.T) {
	a := mustRows(t, [][]float64{
		{1, 2, 4},
		{5, -7, 0},
	})
	at, err := matrix.Transpose[float64](a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())

	want := [][]float64{{21, -9}, {-9, 74}}

	fast, err := matrix.Mul[float64](a, at)
	require.NoError(t, err)
	require.Equal(t, want, rowsOf[float64](t, fast))

	slow, err := matrix.Mul[float64](hide[float64]{a}, hide[float64]{at})
	require.NoError(t, err)
	require.Equal(t, want, rowsOf[float64](t, slow))
}

func TestMulDimensionMismatch(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}})
	_, err := matrix.Mul[int](a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeInvolution(t *testing.T) {
	a := mustDense(t, 3, 5)
	fillDenseRand(t, a, 7)

	at, err := matrix.T[float64](hide[float64]{a})
	require.NoError(t, err)
	att, err := matrix.T[float64](at)
	require.NoError(t, err)

	eq, err := matrix.Equal[float64](a, att)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestScaleHadamard(t *testing.T) {
	a := mustRows(t, [][]int{{1, -2}, {3, 0}})

	s, err := matrix.ScaleBy[int](a, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{3, -6}, {9, 0}}, rowsOf[int](t, s))

	h, err := matrix.HadamardProd[int](a, hide[int]{a})
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4}, {9, 0}}, rowsOf[int](t, h))
}

func TestEqual(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 3}})
	b := mustRows(t, [][]int{{1}, {2}, {3}})

	eq, err := matrix.Equal[int](a, b)
	require.NoError(t, err)
	require.False(t, eq, "same elements, different shape")

	eq, err = matrix.Equal[int](a, hide[int]{a.Clone()})
	require.NoError(t, err)
	require.True(t, eq)

	_, err = matrix.Equal[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIdentityProduct(t *testing.T) {
	a := mustDense(t, 4, 4)
	fillDenseRand(t, a, 99)
	id, err := matrix.NewIdentity[float64](4)
	require.NoError(t, err)

	p, err := matrix.Product[float64](a, id)
	require.NoError(t, err)
	eq, err := matrix.Equal[float64](a, p)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestApplyClip(t *testing.T) {
	a := mustRows(t, [][]int{{-5, 0}, {5, 10}})

	c, err := matrix.Clip[int](a, 8, 0) // bounds are normalized
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {5, 8}}, rowsOf[int](t, c))

	f, err := matrix.Apply(matrix.Matrix[int](a), func(v int) float64 { return float64(v) / 2 })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2.5, 0}, {2.5, 5}}, rowsOf[float64](t, f))
}
