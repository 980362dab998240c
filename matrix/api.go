// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing packed matrices (*Dense, *Mat) to unlock fast paths in kernels.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Scalar](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for products and inverses.
func NewIdentity[T Scalar](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i+i*n] = 1
	}

	return I, nil
}

// ZerosLike allocates a zero matrix with the same shape as m.
func ZerosLike[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// ---------- Algebra (public surface → kernels) ----------

// Sum returns a + b.
func Sum[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff returns a − b.
func Diff[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product returns a × b.
// AI-Hints: Keep both operands packed to hit the column-major fast path.
func Product[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProd returns a ⊙ b.
func HadamardProd[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return Hadamard(a, b) }

// T returns mᵀ.
func T[E Scalar](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy returns alpha*m.
func ScaleBy[T Scalar](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// InverseOf returns m⁻¹.
func InverseOf[T Float](m Matrix[T]) (*Dense[T], error) { return Inverse(m) }

// Det returns det(m).
func Det[T Float](m Matrix[T]) (T, error) { return Determinant(m) }

// LUDecompose returns the L and U factors and the row permutation of m.
func LUDecompose[T Float](m Matrix[T]) (*Dense[T], *Dense[T], []int, error) {
	f, err := LU(m)
	if err != nil {
		return nil, nil, nil, err
	}

	return f.L(), f.U(), f.Pivot(), nil
}

// ---------- Element-wise ----------

// Apply returns f applied to every element of m, in storage order.
// AI-Hints: the result element type may differ (e.g. int → float64 before Inverse).
func Apply[T, U Scalar](m Matrix[T], f func(T) U) (*Dense[U], error) {
	return ewApply(m, f, "Apply")
}

// Clip returns a copy of m with elements clamped into [lo, hi].
// Policy: If lo > hi, bounds are swapped (normalized).
func Clip[T Scalar](m Matrix[T], lo, hi T) (*Dense[T], error) { return ewClipRange(m, lo, hi) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
