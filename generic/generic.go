// SPDX-License-Identifier: MIT

package generic

import (
	"fmt"

	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/matrix"
	"github.com/katalvlaran/genstore/storage"
	"github.com/katalvlaran/genstore/unsigned"
)

// ErrDimensionMismatch is returned when runtime-sized input does not match
// the compile-time shape. It wraps storage.ErrDimensionMismatch.
var ErrDimensionMismatch = fmt.Errorf("generic: %w", storage.ErrDimensionMismatch)

// Matrix is an R×C matrix of T whose size is fixed by two descriptors.
// It is an engine matrix: every matrix kernel accepts it directly.
type Matrix[T matrix.Scalar, R, C conv.Descriptor] = matrix.Mat[T, *storage.GenericArrayStorage[T, R, C]]

// wrap binds s to the engine surface.
func wrap[T matrix.Scalar, R, C conv.Descriptor](s *storage.GenericArrayStorage[T, R, C]) *Matrix[T, R, C] {
	m, err := matrix.FromData[T](s)
	if err != nil {
		// GenericArrayStorage always reports contiguous memory.
		panic(err)
	}

	return m
}

// New returns a zero R×C matrix.
func New[R, C conv.Descriptor, T matrix.Scalar]() *Matrix[T, R, C] {
	return wrap(storage.New[R, C, T]())
}

// FromColumns builds a matrix from C columns of R elements. Columns built
// from raw arrays go through conv.ArrayToGenericN:
//
//	c0 := conv.ArrayToGeneric2[dim.U2]([2]float64{1, 2})
//	c1 := conv.ArrayToGeneric2[dim.U2]([2]float64{3, 4})
//	m := generic.FromColumns(conv.ArrayToGeneric2[dim.U2]([2]garray.Array[float64, dim.U2]{c0, c1}))
func FromColumns[T matrix.Scalar, R, C conv.Descriptor](cols garray.Array[garray.Array[T, R], C]) *Matrix[T, R, C] {
	return wrap(storage.FromColumns(cols))
}

// FromRows builds a matrix from a row-major literal.
// Returns ErrDimensionMismatch unless rows is exactly R×C.
func FromRows[R, C conv.Descriptor, T matrix.Scalar](rows [][]T) (*Matrix[T, R, C], error) {
	nr, nc := conv.Num[R](), conv.Num[C]()
	if len(rows) != nr {
		return nil, fmt.Errorf("FromRows: got %d rows, want %d: %w", len(rows), nr, ErrDimensionMismatch)
	}
	m := New[R, C, T]()
	buf := m.Data().AsMutSlice()
	for i, row := range rows {
		if len(row) != nc {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), nc, ErrDimensionMismatch)
		}
		for j, v := range row {
			buf[i+j*nr] = v
		}
	}

	return m, nil
}

// FromMatrix moves the elements of an engine storage into an R×C matrix.
// Nothing is copied; src is consumed through ForgetElements.
//
// Returns ErrDimensionMismatch when src is not R×C and
// matrix.ErrNotContiguous when src is not packed column-major; src is left
// untouched in both cases.
func FromMatrix[R, C conv.Descriptor, T matrix.Scalar](src matrix.Storage[T]) (*Matrix[T, R, C], error) {
	r, c := src.Shape()
	if r.Value() != conv.Num[R]() || c.Value() != conv.Num[C]() {
		return nil, fmt.Errorf("FromMatrix: got %dx%d, want %dx%d: %w",
			r.Value(), c.Value(), conv.Num[R](), conv.Num[C](), ErrDimensionMismatch)
	}
	if err := matrix.ValidateContiguous[T](src); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	data := src.AsMutSlice()
	src.ForgetElements()
	s, err := storage.FromSlice[R, C](data)
	if err != nil {
		// The shape was checked above: a length mismatch here is a defect.
		panic(fmt.Errorf("%w: %w", conv.ErrBridge, err))
	}

	return wrap(s), nil
}

// Conv reinterprets m with compatible descriptors R2×C2 without copying.
// m is consumed.
//
// R2 and R1 must share an array-length representation, and so must C2 and
// C1; otherwise the call does not compile:
//
//	a := generic.New[dim.U2, dim.U3, float64]()
//	b := generic.Conv[unsigned.U2, unsigned.Const3](a) // ok
//	c := generic.Conv[unsigned.U3, unsigned.U3](b)     // compile error
func Conv[R2 conv.Conv[LR], C2 conv.Conv[LC], T matrix.Scalar, LR, LC unsigned.Unsigned, R1 conv.Conv[LR], C1 conv.Conv[LC]](m *Matrix[T, R1, C1]) *Matrix[T, R2, C2] {
	cols := garray.Map(m.Data().IntoColumns(), func(col garray.Array[T, R1]) garray.Array[T, R2] {
		return conv.Fwd[R2, R1, T, LR](col)
	})

	return FromColumns(conv.Fwd[C2, C1, garray.Array[T, R2], LC](cols))
}

// Columns returns C column views over m. FromColumns copies them rather than
// sharing m's buffer.
func Columns[T matrix.Scalar, R, C conv.Descriptor](m *Matrix[T, R, C]) garray.Array[garray.Array[T, R], C] {
	return m.Data().Columns()
}

// IntoColumns consumes m and returns its columns.
func IntoColumns[T matrix.Scalar, R, C conv.Descriptor](m *Matrix[T, R, C]) garray.Array[garray.Array[T, R], C] {
	return m.Data().IntoColumns()
}

// IntoDense hands the buffer of m over to an engine *Dense without copying.
// m is consumed.
func IntoDense[T matrix.Scalar, R, C conv.Descriptor](m *Matrix[T, R, C]) *matrix.Dense[T] {
	d, err := matrix.DenseFromRawParts(m.Data().IntoRawParts(), conv.Num[R](), conv.Num[C]())
	if err != nil {
		panic(err)
	}

	return d
}

// Clone returns an independent copy of m.
func Clone[T matrix.Scalar, R, C conv.Descriptor](m *Matrix[T, R, C]) *Matrix[T, R, C] {
	return wrap(m.Data().Clone())
}

// Equal reports whether a and b hold the same elements.
// Matrices declared with different descriptor spellings compare through
// matrix.Equal instead.
func Equal[T matrix.Scalar, R, C conv.Descriptor](a, b *Matrix[T, R, C]) bool {
	return a.Data().Equal(b.Data())
}
