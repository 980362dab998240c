// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels (ew*): map, clip, closeness.
//
// Purpose:
//   - Keep per-element loops in one place; public facades in api.go forward here.
//   - Iterate packed buffers flat when possible, otherwise column by column via At.
//
// Determinism:
//   - Fixed traversal order (storage order); no data-dependent branches beyond
//     the early exit in ewAllClose.

package matrix

import (
	"math"
)

// ewApply returns a fresh matrix with out[i,j] = f(X[i,j]).
// Time: O(r*c). Space: O(r*c).
func ewApply[T, U Scalar](X Matrix[T], f func(T) U, tag string) (*Dense[U], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense[U](r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Packed fast path.
	if fx, ok := flat(X); ok {
		for k, v := range fx {
			out.data[k] = f(v)
		}

		return out, nil
	}

	var v T
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i+j*r] = f(v)
		}
	}

	return out, nil
}

// ewClipRange clamps every element into [lo, hi]; lo > hi is normalized by swapping.
func ewClipRange[T Scalar](X Matrix[T], lo, hi T) (*Dense[T], error) {
	if lo > hi {
		lo, hi = hi, lo
	}

	return ewApply(X, func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}

		return v
	}, "Clip")
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	within := func(av, bv T) bool {
		x, y := float64(av), float64(bv)
		if x == y { // covers equal infinities
			return true
		}

		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	}

	// Packed fast path.
	if fa, okA := flat(a); okA {
		if fb, okB := flat(b); okB {
			for k := range fa {
				if !within(fa[k], fb[k]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv T
	for j := 0; j < a.Cols(); j++ {
		for i := 0; i < a.Rows(); i++ {
			av, _ = a.At(i, j) // in range after the shape check
			bv, _ = b.At(i, j)
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
