// SPDX-License-Identifier: MIT

// Package storage provides GenericArrayStorage, the engine storage behind
// every fixed-size matrix of this module.
//
// Purpose:
//   - Own one packed column-major buffer of R.Num()*C.Num() elements whose
//     size comes from two compile-time descriptors.
//   - Fulfil matrix.Storage so the engine computes on it without knowing how
//     its size was spelled.
//   - Expose the buffer as C columns of R elements (garray.Array[T, R]) with
//     zero-copy chunk/flatten.
//
// Ownership:
//   - IntoColumns, IntoOwned, IntoRawParts and ForgetElements consume the
//     storage. Any later call panics with ErrConsumed.
package storage

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/matrix"
)

var (
	// ErrDimensionMismatch is returned when runtime-sized input does not
	// match the compile-time shape.
	ErrDimensionMismatch = errors.New("storage: dimension mismatch")

	// ErrConsumed is the panic value raised when a consumed storage is used again.
	ErrConsumed = errors.New("storage: use of consumed storage")
)

// GenericArrayStorage holds R×C elements of T in column-major order.
//
// R and C must not exceed dim.MaxValue. A larger binary spelling such as
// unsigned.UInt[unsigned.U128, unsigned.B1] still compiles, but Shape and
// Strides panic with conv.ErrBridge because no named dimension exists for it.
//
// The zero value is not usable; build one with New, FromColumns or FromSlice.
// Copying the struct value shares the buffer; use Clone for a deep copy.
type GenericArrayStorage[T matrix.Scalar, R, C conv.Descriptor] struct {
	data     []T // len == R.Num()*C.Num(), never nil while live
	consumed bool
}

// size returns R.Num()*C.Num().
func size[R, C conv.Descriptor]() int { return conv.Num[R]() * conv.Num[C]() }

// New returns a zero-filled storage.
func New[R, C conv.Descriptor, T matrix.Scalar]() *GenericArrayStorage[T, R, C] {
	return &GenericArrayStorage[T, R, C]{data: make([]T, size[R, C]())}
}

// FromColumns builds a storage from C columns of R elements.
// Columns returned by IntoColumns still sit back to back in memory and their
// buffer is adopted as is. Anything else, including the views returned by
// Columns, is copied once, so the new storage never shares memory with a
// live one.
func FromColumns[T matrix.Scalar, R, C conv.Descriptor](cols garray.Array[garray.Array[T, R], C]) *GenericArrayStorage[T, R, C] {
	return &GenericArrayStorage[T, R, C]{data: garray.SliceFromChunks(cols.Slice())}
}

// FromSlice adopts a column-major slice without copying it.
// Returns ErrDimensionMismatch when len(data) != R.Num()*C.Num().
func FromSlice[R, C conv.Descriptor, T matrix.Scalar](data []T) (*GenericArrayStorage[T, R, C], error) {
	if n := size[R, C](); len(data) != n {
		return nil, fmt.Errorf("FromSlice: got %d elements, want %d: %w", len(data), n, ErrDimensionMismatch)
	}
	if data == nil {
		data = make([]T, 0)
	}

	return &GenericArrayStorage[T, R, C]{data: data}, nil
}

// live panics with ErrConsumed once the storage has been consumed.
func (s *GenericArrayStorage[T, R, C]) live() {
	if s.consumed {
		panic(ErrConsumed)
	}
}

// take marks the storage consumed and returns its buffer.
func (s *GenericArrayStorage[T, R, C]) take() []T {
	s.live()
	data := s.data
	s.data, s.consumed = nil, true

	return data
}

// Columns returns C column views over the buffer. Writes through a view are
// visible in the storage; FromColumns copies views instead of adopting them.
func (s *GenericArrayStorage[T, R, C]) Columns() garray.Array[garray.Array[T, R], C] {
	s.live()

	return columnsOf[T, R, C](s.data, true)
}

// IntoColumns consumes the storage and returns its columns.
func (s *GenericArrayStorage[T, R, C]) IntoColumns() garray.Array[garray.Array[T, R], C] {
	return columnsOf[T, R, C](s.take(), false)
}

// columnsOf cuts data into C columns, marked as views when the storage keeps
// owning data; data must hold exactly R*C elements.
func columnsOf[T matrix.Scalar, R, C conv.Descriptor](data []T, view bool) garray.Array[garray.Array[T, R], C] {
	chunks, _ := garray.ChunksFromSlice[R](data)
	if view {
		for i := range chunks {
			chunks[i] = chunks[i].View()
		}
	}
	if conv.Num[R]() == 0 {
		// Zero-length columns carry no memory; there are still C of them.
		chunks = make([]garray.Array[T, R], conv.Num[C]())
		for i := range chunks {
			chunks[i] = garray.New[R, T]()
		}
	}

	return garray.MustFromSlice[C](chunks)
}

// Ptr returns a pointer to the first element, or a non-nil sentinel when the
// storage holds no element.
func (s *GenericArrayStorage[T, R, C]) Ptr() *T {
	s.live()
	if len(s.data) == 0 {
		return new(T)
	}

	return &s.data[0]
}

// PtrMut is Ptr for writers.
func (s *GenericArrayStorage[T, R, C]) PtrMut() *T { return s.Ptr() }

// Shape returns (R, C) as named dimensions.
func (s *GenericArrayStorage[T, R, C]) Shape() (dim.Dim, dim.Dim) {
	return conv.NewNalg[R](), conv.NewNalg[C]()
}

// Strides returns (1, R): the buffer is column-major.
func (s *GenericArrayStorage[T, R, C]) Strides() (dim.Dim, dim.Dim) {
	return dim.U1{}, conv.NewNalg[R]()
}

// IsContiguous is always true.
func (s *GenericArrayStorage[T, R, C]) IsContiguous() bool { return true }

// AsSlice returns the buffer without copying.
func (s *GenericArrayStorage[T, R, C]) AsSlice() []T {
	s.live()

	return s.data
}

// AsMutSlice returns the buffer without copying.
func (s *GenericArrayStorage[T, R, C]) AsMutSlice() []T { return s.AsSlice() }

// IntoOwned moves the elements, in storage order, into an engine *Dense and
// consumes the storage.
func (s *GenericArrayStorage[T, R, C]) IntoOwned() *matrix.Dense[T] {
	rows, cols := s.Shape()
	d, err := matrix.AllocateFromIterator(rows, cols, slices.Values(s.take()))
	if err != nil {
		// The buffer length is R*C by construction.
		panic(err)
	}

	return d
}

// CloneOwned copies the elements into an engine *Dense; s stays usable.
func (s *GenericArrayStorage[T, R, C]) CloneOwned() *matrix.Dense[T] {
	return s.Clone().IntoOwned()
}

// ForgetElements relinquishes the buffer without reading it and consumes
// the storage. Callers use it after taking the memory over by other means.
func (s *GenericArrayStorage[T, R, C]) ForgetElements() { s.take() }

// IntoRawParts hands the column-major buffer over and consumes the storage.
func (s *GenericArrayStorage[T, R, C]) IntoRawParts() []T { return s.take() }

// Clone returns an independent deep copy.
func (s *GenericArrayStorage[T, R, C]) Clone() *GenericArrayStorage[T, R, C] {
	s.live()

	return &GenericArrayStorage[T, R, C]{data: slices.Clone(s.data)}
}

// Equal reports whether s and o hold the same elements.
func (s *GenericArrayStorage[T, R, C]) Equal(o *GenericArrayStorage[T, R, C]) bool {
	s.live()
	o.live()

	return slices.Equal(s.data, o.data)
}

// String prints the columns.
func (s *GenericArrayStorage[T, R, C]) String() string {
	if s.consumed {
		return "GenericArrayStorage(consumed)"
	}

	return fmt.Sprintf("GenericArrayStorage%v", s.Columns())
}

var _ matrix.Storage[float64] = (*GenericArrayStorage[float64, dim.U2, dim.U3])(nil)
