// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/genstore/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the At/Set fallback paths.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one packed to
//     isolate path differences.
type hide[T matrix.Scalar] struct{ matrix.Matrix[T] }

// mustRows builds a *Dense from a row literal or fails the test.
func mustRows[T matrix.Scalar](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := m.AsMutSlice()
	for k := range buf {
		buf[k] = rng.Float64()*2 - 1
	}
}

// rowsOf reads m back into a row-major literal.
func rowsOf[T matrix.Scalar](tb testing.TB, m matrix.Matrix[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}
