// SPDX-License-Identifier: MIT

// Package matrix: element constraints, the Matrix surface and the raw storage
// contract. This file intentionally contains ONLY type declarations.
package matrix

import "github.com/katalvlaran/genstore/dim"

// Scalar is the set of element types the engine computes with.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the set of element types division-based kernels accept.
type Float interface {
	~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error
}

// RawStorage is the read side of the storage contract.
//
// Contract:
//   - Ptr never returns nil, even for an empty storage.
//   - Shape returns (rows, cols) and has no side effects.
//   - Strides returns (row stride, column stride) in elements: the offset of
//     (i, j) is i*rowStride + j*colStride.
//   - When IsContiguous is true, AsSlice returns every element exactly once,
//     in storage order, without copying.
type RawStorage[T any] interface {
	Ptr() *T
	Shape() (dim.Dim, dim.Dim)
	Strides() (dim.Dim, dim.Dim)
	IsContiguous() bool
	AsSlice() []T
}

// RawStorageMut is the write side of the storage contract.
type RawStorageMut[T any] interface {
	RawStorage[T]
	PtrMut() *T
	AsMutSlice() []T
}

// Storage is a RawStorageMut that owns its elements.
//
// Contract:
//   - IntoOwned re-allocates the elements as a *Dense, in storage order, and
//     consumes the storage.
//   - CloneOwned does the same without consuming.
//   - ForgetElements relinquishes the elements without touching them; it is
//     called once the engine has taken over the memory itself.
type Storage[T Scalar] interface {
	RawStorageMut[T]
	IntoOwned() *Dense[T]
	CloneOwned() *Dense[T]
	ForgetElements()
}

// Contiguous is a Matrix that also exposes its raw storage.
// Both *Dense and *Mat implement it.
type Contiguous[T Scalar] interface {
	Matrix[T]
	RawStorage[T]
}
