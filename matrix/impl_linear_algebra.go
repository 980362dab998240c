// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose and scalar scaling. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - Kernels take a flat fast path when both operands expose packed
//     column-major storage (Dense, Mat over any Storage); otherwise they fall
//     back to At/Set with fixed loop orders.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opEqual     = "Equal"
	opLU        = "LU"
	opDet       = "Determinant"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flat returns the packed column-major buffer of m when it has one.
//
// Behavior highlights:
//   - Accepts anything that also implements RawStorage (Dense, Mat).
//   - Rejects storages whose strides are not (1, rows): the flat index of
//     (i, j) must be i + j*rows for every fast path below.
func flat[T Scalar](m Matrix[T]) ([]T, bool) {
	rs, ok := m.(RawStorage[T])
	if !ok {
		return nil, false
	}
	if ValidateContiguous(rs) != nil {
		return nil, false
	}

	return rs.AsSlice(), true
}

// addSub computes elementwise out = a ± b.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast path if both are packed: single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed j→i order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Scalar](a, b Matrix[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: flat walk over both buffers.
	if fa, okA := flat(a); okA {
		if fb, okB := flat(b); okB {
			for k := range res.data {
				if sub {
					res.data[k] = fa[k] - fb[k]
				} else {
					res.data[k] = fa[k] + fb[k]
				}
			}

			return res, nil
		}
	}

	// Fallback: generic column-by-column loop.
	var (
		i, j   int
		av, bv T
	)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if sub {
				res.data[i+j*rows] = av - bv
			} else {
				res.data[i+j*rows] = av + bv
			}
		}
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAdd).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opSub).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result Dense(a.Rows, b.Cols).
//   - Stage 2: Fast path on packed operands with j→k→i loop order, which
//     walks every buffer down its columns. Fallback uses At with i→j→k.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero B[k,j] avoids useless multiplies.
//
// AI-Hints:
//   - Keep both operands packed (Dense or Mat) to unlock the fast path.
func Mul[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current T
	)
	// Fast path: column-major on all three buffers.
	if fa, okA := flat(a); okA {
		if fb, okB := flat(b); okB {
			var colA, colR int
			for j = 0; j < bCols; j++ {
				colR = j * aRows
				for k = 0; k < inner; k++ {
					bv = fb[k+j*inner]
					if bv == 0 {
						continue // skip zero for performance
					}
					colA = k * aRows
					for i = 0; i < aRows; i++ {
						res.data[colR+i] += fa[colA+i] * bv
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i+j*aRows] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: packed input uses direct index mapping; otherwise At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Avoid transposing repeatedly in tight loops; hoist and reuse the result.
func Transpose[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var (
		i, j int
		v    T
	)
	fm, packed := flat(m)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if packed {
				v = fm[i+j*rows]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			// (i,j) of m lands on (j,i) of a cols×rows column-major result.
			res.data[j+i*cols] = v
		}
	}

	return res, nil
}

// Scale returns alpha*m.
//
// Errors:
//   - ErrNilMatrix (wrapped with opScale).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Scalar](m Matrix[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if fm, ok := flat(m); ok {
		for k, v := range fm {
			res.data[k] = alpha * v
		}

		return res, nil
	}

	var v T
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i+j*rows] = alpha * v
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product a ⊙ b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opHadamard).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	var av, bv T
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i+j*rows] = av * bv
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Different shapes are not an error: they simply compare unequal.
//
// Errors:
//   - ErrNilMatrix (wrapped with opEqual).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal[T Scalar](a, b Matrix[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	if fa, okA := flat(a); okA {
		if fb, okB := flat(b); okB {
			for k := range fa {
				if fa[k] != fb[k] {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var (
		av, bv T
		err    error
	)
	for j := 0; j < a.Cols(); j++ {
		for i := 0; i < a.Rows(); i++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
