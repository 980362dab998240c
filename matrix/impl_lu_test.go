// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/genstore/matrix"
	"github.com/stretchr/testify/require"
)

func TestInverseAndDeterminant2x2(t *testing.T) {
	a := mustRows(t, [][]float64{
		{1, 3},
		{-4, 4},
	})

	det, err := matrix.Det[float64](a)
	require.NoError(t, err)
	require.Equal(t, 16.0, det)

	inv, err := matrix.InverseOf[float64](a)
	require.NoError(t, err)
	want := mustRows(t, [][]float64{
		{4.0 / 16, -3.0 / 16},
		{4.0 / 16, 1.0 / 16},
	})
	ok, err := matrix.AllClose[float64](inv, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok, "inverse:\n%v", inv)
}

func TestInverseRoundTrip(t *testing.T) {
	a := mustDense(t, 6, 6)
	fillDenseRand(t, a, 2024)
	for i := 0; i < 6; i++ {
		v, _ := a.At(i, i)
		require.NoError(t, a.Set(i, i, v+6)) // diagonally dominant ⇒ invertible
	}

	inv, err := matrix.Inverse[float64](hide[float64]{a})
	require.NoError(t, err)
	p, err := matrix.Mul[float64](a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity[float64](6)
	require.NoError(t, err)

	ok, err := matrix.AllClose[float64](p, id, 1e-9, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLUFactors(t *testing.T) {
	a := mustRows(t, [][]float64{
		{2, 1, 1},
		{4, -6, 0},
		{-2, 7, 2},
	})
	l, u, piv, err := matrix.LUDecompose[float64](a)
	require.NoError(t, err)
	require.Len(t, piv, 3)

	// P*A == L*U.
	lu, err := matrix.Mul[float64](l, u)
	require.NoError(t, err)
	pa := mustDense(t, 3, 3)
	for i, src := range piv {
		for j := 0; j < 3; j++ {
			v, _ := a.At(src, j)
			require.NoError(t, pa.Set(i, j, v))
		}
	}
	ok, err := matrix.AllClose[float64](lu, pa, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	// U is upper triangular, L has a unit diagonal.
	for i := 0; i < 3; i++ {
		d, _ := l.At(i, i)
		require.Equal(t, 1.0, d)
		for j := 0; j < i; j++ {
			z, _ := u.At(i, j)
			require.Zero(t, z)
		}
	}

	f, err := matrix.LU[float64](a)
	require.NoError(t, err)
	x, err := f.Solve([]float64{5, -2, 9})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 2}, x, 1e-12)

	_, err = f.Solve([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSingular(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Inverse[float64](a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	det, err := matrix.Determinant[float64](a)
	require.NoError(t, err)
	require.Zero(t, det)
}

var errRead = errors.New("read failed")

// unreadable is a square matrix whose elements cannot be read.
type unreadable struct{ matrix.Matrix[float64] }

func (unreadable) At(int, int) (float64, error) { return 0, errRead }

func TestDeterminantReportsReadErrors(t *testing.T) {
	det, err := matrix.Determinant[float64](unreadable{mustDense(t, 2, 2)})
	require.ErrorIs(t, err, errRead)
	require.NotErrorIs(t, err, matrix.ErrSingular)
	require.Zero(t, det)
}

func TestNonSquare(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}})
	_, err := matrix.Inverse[float64](a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant[float64](a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAllCloseTolerances(t *testing.T) {
	a := mustRows(t, [][]float64{{1, math.Inf(1)}})
	b := mustRows(t, [][]float64{{1 + 1e-10, math.Inf(1)}})

	ok, err := matrix.AllClose[float64](a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose[float64](a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose[float64](a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
