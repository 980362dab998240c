// SPDX-License-Identifier: MIT

// Package matrix - Mat: the Matrix surface over any Storage.
//
// Purpose:
//   - Bind a Storage implementation to the Matrix interface so every kernel of
//     this package accepts it, whatever declared its size.
//   - Resolve (i, j) through the storage's own strides: offset = i*rs + j*cs.
//
// Behavior highlights:
//   - Mat never copies the storage; it is a typed handle around it.
//   - Kernels see Mat as Contiguous and take their flat fast path on it.
//
// AI-Hints:
//   - Wrap foreign storages with FromData, then call Add/Mul/... directly.
//   - Use IntoOwned to leave the wrapper and continue with a plain *Dense.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/genstore/dim"
)

const (
	ctxMatAt  = "Mat.At"
	ctxMatSet = "Mat.Set"
)

// Mat exposes a Storage as a Matrix.
type Mat[T Scalar, S Storage[T]] struct {
	data S // wrapped storage, never a nil interface
}

// FromData wraps s.
//
// Errors:
//   - ErrNotContiguous when s does not expose one packed buffer.
//
// Complexity:
//   - Time O(1).
func FromData[T Scalar, S Storage[T]](s S) (*Mat[T, S], error) {
	if !s.IsContiguous() {
		return nil, matrixErrorf("FromData", ErrNotContiguous)
	}

	return &Mat[T, S]{data: s}, nil
}

// Data returns the wrapped storage.
func (m *Mat[T, S]) Data() S { return m.data }

// Rows returns the number of rows in the matrix.
func (m *Mat[T, S]) Rows() int {
	r, _ := m.data.Shape()

	return r.Value()
}

// Cols returns the number of columns in the matrix.
func (m *Mat[T, S]) Cols() int {
	_, c := m.data.Shape()

	return c.Value()
}

// offset resolves (i, j) through the strides or returns ErrOutOfRange.
func (m *Mat[T, S]) offset(tag string, i, j int) (int, error) {
	r, c := m.data.Shape()
	if i < 0 || i >= r.Value() || j < 0 || j >= c.Value() {
		return 0, fmt.Errorf("%s(%d,%d): %w", tag, i, j, ErrOutOfRange)
	}
	rs, cs := m.data.Strides()

	return i*rs.Value() + j*cs.Value(), nil
}

// At retrieves the element at (i, j).
func (m *Mat[T, S]) At(i, j int) (T, error) {
	off, err := m.offset(ctxMatAt, i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data.AsSlice()[off], nil
}

// Set assigns v at (i, j).
func (m *Mat[T, S]) Set(i, j int, v T) error {
	off, err := m.offset(ctxMatSet, i, j)
	if err != nil {
		return err
	}
	m.data.AsMutSlice()[off] = v

	return nil
}

// Ptr forwards to the storage.
func (m *Mat[T, S]) Ptr() *T { return m.data.Ptr() }

// Shape forwards to the storage.
func (m *Mat[T, S]) Shape() (r, c dim.Dim) { return m.data.Shape() }

// Strides forwards to the storage.
func (m *Mat[T, S]) Strides() (rs, cs dim.Dim) { return m.data.Strides() }

// IsContiguous forwards to the storage.
func (m *Mat[T, S]) IsContiguous() bool { return m.data.IsContiguous() }

// AsSlice forwards to the storage.
func (m *Mat[T, S]) AsSlice() []T { return m.data.AsSlice() }

// CloneOwned copies the elements into a fresh *Dense; m stays usable.
func (m *Mat[T, S]) CloneOwned() *Dense[T] { return m.data.CloneOwned() }

// IntoOwned moves the elements into a *Dense and consumes the storage.
func (m *Mat[T, S]) IntoOwned() *Dense[T] { return m.data.IntoOwned() }

// String implements fmt.Stringer, one row per line.
func (m *Mat[T, S]) String() string { return formatMatrix[T](m) }

var (
	_ Contiguous[float64] = (*Mat[float64, *Dense[float64]])(nil)
	_ fmt.Stringer        = (*Mat[int, *Dense[int]])(nil)
)
