// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors tagged by validator so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// AI-Hints:
//   - Use ValidateContiguous before handing a storage's flat slice to a kernel.
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b are non-nil and have equal dimensions.
//
// Return: nil, ErrNilMatrix or ErrDimensionMismatch (wrapped).
// Complexity: O(1).
// AI-Hints: Use for Add/Sub/Equal kernels.
func ValidateSameShape[T Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare[T Scalar](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateContiguous checks that s exposes one packed buffer of rows*cols
// elements in column-major order, which is what the flat kernels assume.
//
// Errors: ErrNotContiguous.
// Complexity: O(1).
func ValidateContiguous[T any](s RawStorage[T]) error {
	if !s.IsContiguous() {
		return validatorErrorf("ValidateContiguous", ErrNotContiguous)
	}
	r, c := s.Shape()
	rs, cs := s.Strides()
	if len(s.AsSlice()) != r.Value()*c.Value() {
		return validatorErrorf("ValidateContiguous: length", ErrNotContiguous)
	}
	// Strides are irrelevant when there is at most one row or no element.
	if r.Value() > 1 && c.Value() > 0 && (rs.Value() != 1 || cs.Value() != r.Value()) {
		return validatorErrorf("ValidateContiguous: strides", ErrNotContiguous)
	}

	return nil
}
