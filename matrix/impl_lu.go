// SPDX-License-Identifier: MIT
// Package matrix - LU factorization with partial pivoting, determinant and inverse.
//
// Purpose:
//   - Factor a square float matrix as P*A = L*U (L unit lower, U upper).
//   - Derive Determinant and Inverse from one factorization.
//
// Determinism:
//   - Pivot search scans rows top-down and keeps the first maximum, so equal
//     inputs give bit-identical outputs.
//
// AI-Hints:
//   - Factor once with LU and call Det/Solve/Inverse on the result when the
//     same matrix is used repeatedly.

package matrix

import (
	"errors"
	"fmt"
)

// LUFactors holds a compact LU factorization of an n×n matrix.
//   - lu stores L below the diagonal (unit diagonal implied) and U on and above it.
//   - piv[i] is the source row of row i of P*A.
//   - sign is the parity of the permutation (+1 or -1).
type LUFactors[T Float] struct {
	lu   *Dense[T]
	piv  []int
	sign T
}

// LU factors m with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into a packed working buffer.
//   - Stage 2: for each column k, pick the row with the largest |a[i,k]|,
//     swap it into place, then eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with opLU).
//   - ErrSingular when a column has no non-zero pivot.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU[T Float](m Matrix[T]) (*LUFactors[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign := T(1)
	d := a.data

	var (
		i, j, k, p int
		best, v    T
	)
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, abs(d[k+k*n])
		for i = k + 1; i < n; i++ {
			if v = abs(d[i+k*n]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				d[k+j*n], d[p+j*n] = d[p+j*n], d[k+j*n]
			}
			piv[k], piv[p] = piv[p], piv[k]
			sign = -sign
		}

		// Elimination below the pivot.
		for i = k + 1; i < n; i++ {
			d[i+k*n] /= d[k+k*n]
			v = d[i+k*n]
			if v == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				d[i+j*n] -= v * d[k+j*n]
			}
		}
	}

	return &LUFactors[T]{lu: a, piv: piv, sign: sign}, nil
}

// L returns the unit lower-triangular factor.
func (f *LUFactors[T]) L() *Dense[T] {
	n := f.lu.r
	out, _ := NewDense[T](n, n)
	for j := 0; j < n; j++ {
		out.data[j+j*n] = 1
		for i := j + 1; i < n; i++ {
			out.data[i+j*n] = f.lu.data[i+j*n]
		}
	}

	return out
}

// U returns the upper-triangular factor.
func (f *LUFactors[T]) U() *Dense[T] {
	n := f.lu.r
	out, _ := NewDense[T](n, n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			out.data[i+j*n] = f.lu.data[i+j*n]
		}
	}

	return out
}

// Pivot returns a copy of the row permutation.
func (f *LUFactors[T]) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// Det returns the determinant: sign * Π U[i,i].
func (f *LUFactors[T]) Det() T {
	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i+i*n]
	}

	return det
}

// Solve solves A*x = b for one right-hand side.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != n.
func (f *LUFactors[T]) Solve(b []T) ([]T, error) {
	n := f.lu.r
	if len(b) != n {
		return nil, fmt.Errorf("Solve: len %d, want %d: %w", len(b), n, ErrDimensionMismatch)
	}
	x := make([]T, n)
	f.solveInto(x, func(i int) T { return b[i] })

	return x, nil
}

// solveInto writes the solution for the right-hand side rhs into x.
func (f *LUFactors[T]) solveInto(x []T, rhs func(i int) T) {
	n := f.lu.r
	d := f.lu.data
	var (
		i, j int
		sum  T
	)
	// Forward: L*y = P*b.
	for i = 0; i < n; i++ {
		sum = rhs(f.piv[i])
		for j = 0; j < i; j++ {
			sum -= d[i+j*n] * x[j]
		}
		x[i] = sum
	}
	// Backward: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d[i+j*n] * x[j]
		}
		x[i] = sum / d[i+i*n]
	}
}

// Inverse returns A⁻¹ by solving A*X = I column by column.
func (f *LUFactors[T]) Inverse() *Dense[T] {
	n := f.lu.r
	out, _ := NewDense[T](n, n)
	for j := 0; j < n; j++ {
		f.solveInto(out.data[j*n:(j+1)*n], func(i int) T {
			if i == j {
				return 1
			}
			return 0
		})
	}

	return out
}

// Determinant returns det(m). A singular matrix has determinant 0 and no error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with opDet).
//
// Complexity:
//   - Time O(n³).
func Determinant[T Float](m Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	f, err := LU(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse returns m⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with opInverse).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T Float](m Matrix[T]) (*Dense[T], error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse(), nil
}

// denseCopy copies any matrix into a fresh column-major *Dense.
func denseCopy[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if fm, ok := flat(m); ok {
		out := make([]T, len(fm))
		copy(out, fm)

		return DenseFromRawParts(out, m.Rows(), m.Cols())
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	var v T
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i+j*rows] = v
		}
	}

	return out, nil
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
