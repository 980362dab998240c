// SPDX-License-Identifier: MIT
package storage_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/matrix"
	"github.com/katalvlaran/genstore/storage"
	"github.com/katalvlaran/genstore/unsigned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSliceMismatch(t *testing.T) {
	_, err := storage.FromSlice[dim.U2, dim.U3]([]int{1, 2, 3})
	require.ErrorIs(t, err, storage.ErrDimensionMismatch)
}

func TestContract(t *testing.T) {
	s, err := storage.FromSlice[unsigned.U2, unsigned.Const3]([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	r, c := s.Shape()
	assert.Equal(t, dim.U2{}, r)
	assert.Equal(t, dim.U3{}, c)

	rs, cs := s.Strides()
	assert.Equal(t, 1, rs.Value())
	assert.Equal(t, 2, cs.Value())
	assert.True(t, s.IsContiguous())
	assert.Same(t, &s.AsSlice()[0], s.Ptr())
	assert.Same(t, s.Ptr(), s.PtrMut())
	require.NoError(t, matrix.ValidateContiguous[float64](s))
}

func TestEmptyStorage(t *testing.T) {
	s := storage.New[dim.U0, dim.U4, int]()
	require.NotNil(t, s.Ptr())
	require.Empty(t, s.AsSlice())

	cols := s.Columns()
	require.Equal(t, 4, cols.Len())
	require.True(t, cols.At(0).IsEmpty())

	d := s.IntoOwned()
	require.Equal(t, 0, d.Rows())
	require.Equal(t, 4, d.Cols())
}

func TestColumnsAreViews(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	s, err := storage.FromSlice[dim.U3, dim.U2](data)
	require.NoError(t, err)

	cols := s.Columns()
	require.Equal(t, []int{4, 5, 6}, cols.At(1).Slice())
	cols.At(1).Set(0, 40)
	require.Equal(t, 40, data[3])
}

func TestFromColumnsZeroCopy(t *testing.T) {
	s, err := storage.FromSlice[dim.U2, dim.U2]([]int{1, 2, 3, 4})
	require.NoError(t, err)
	first := unsafe.SliceData(s.AsSlice())

	back := storage.FromColumns(s.IntoColumns())
	require.Equal(t, first, unsafe.SliceData(back.AsSlice()))
	require.Equal(t, []int{1, 2, 3, 4}, back.AsSlice())
}

func TestFromColumnsOfLiveStorageCopies(t *testing.T) {
	a, err := storage.FromSlice[dim.U2, dim.U2]([]int{1, 2, 3, 4})
	require.NoError(t, err)

	b := storage.FromColumns(a.Columns())
	require.Equal(t, []int{1, 2, 3, 4}, b.AsSlice())
	require.NotEqual(t, unsafe.SliceData(a.AsSlice()), unsafe.SliceData(b.AsSlice()))

	b.AsMutSlice()[0] = 99
	require.Equal(t, []int{1, 2, 3, 4}, a.AsSlice())
}

func TestColumnAppendLeavesStorage(t *testing.T) {
	s, err := storage.FromSlice[dim.U2, dim.U2]([]int{1, 2, 3, 4})
	require.NoError(t, err)

	grown := append(s.Columns().At(0).Slice(), 77)
	require.Equal(t, []int{1, 2, 77}, grown)
	require.Equal(t, []int{1, 2, 3, 4}, s.AsSlice())
}

func TestFromColumnsScattered(t *testing.T) {
	c0 := garray.MustFromSlice[dim.U2]([]int{1, 2})
	c1 := garray.MustFromSlice[dim.U2]([]int{3, 4})
	cols := garray.MustFromSlice[dim.U2]([]garray.Array[int, dim.U2]{c0, c1})

	s := storage.FromColumns(cols)
	require.Equal(t, []int{1, 2, 3, 4}, s.AsSlice())
}

func TestIntoOwnedConsumes(t *testing.T) {
	s, err := storage.FromSlice[dim.U2, dim.U2]([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	d := s.IntoOwned()
	require.Equal(t, []float64{1, 2, 3, 4}, d.AsSlice())

	require.PanicsWithValue(t, storage.ErrConsumed, func() { s.AsSlice() })
	require.PanicsWithValue(t, storage.ErrConsumed, func() { s.IntoColumns() })
	require.Equal(t, "GenericArrayStorage(consumed)", s.String())
}

func TestCloneOwnedKeepsStorage(t *testing.T) {
	s, err := storage.FromSlice[dim.U1, dim.U3]([]int{7, 8, 9})
	require.NoError(t, err)

	d := s.CloneOwned()
	require.NoError(t, d.Set(0, 0, 70))
	require.Equal(t, []int{7, 8, 9}, s.AsSlice())
}

func TestRawPartsAndForget(t *testing.T) {
	data := []int{1, 2}
	s, err := storage.FromSlice[dim.U2, dim.U1](data)
	require.NoError(t, err)
	raw := s.IntoRawParts()
	require.Equal(t, unsafe.SliceData(data), unsafe.SliceData(raw))
	require.Panics(t, func() { s.IntoRawParts() })

	f := storage.New[dim.U2, dim.U2, int]()
	f.ForgetElements()
	require.PanicsWithValue(t, storage.ErrConsumed, func() { f.Ptr() })
}

func TestCloneEqualString(t *testing.T) {
	s, err := storage.FromSlice[dim.U2, dim.U2]([]int{1, 2, 3, 4})
	require.NoError(t, err)

	c := s.Clone()
	require.True(t, s.Equal(c))
	c.AsMutSlice()[0] = 9
	require.False(t, s.Equal(c))
	require.Equal(t, "GenericArrayStorage[[1 2] [3 4]]", s.String())
}

func TestStridesForManySizes(t *testing.T) {
	check := func(rows, cols int, shape, strides func() (dim.Dim, dim.Dim)) {
		r, c := shape()
		rs, cs := strides()
		assert.Equal(t, rows, r.Value())
		assert.Equal(t, cols, c.Value())
		assert.Equal(t, 1, rs.Value())
		assert.Equal(t, rows, cs.Value())
	}

	s1 := storage.New[dim.U1, dim.U1, int]()
	check(1, 1, s1.Shape, s1.Strides)
	s2 := storage.New[unsigned.U5, dim.U7, int]()
	check(5, 7, s2.Shape, s2.Strides)
	s3 := storage.New[unsigned.Const16, unsigned.U9, float32]()
	check(16, 9, s3.Shape, s3.Strides)
	s4 := storage.New[dim.U128, unsigned.U0, float64]()
	check(128, 0, s4.Shape, s4.Strides)
}

func TestShapeAboveNamedRange(t *testing.T) {
	s := storage.New[unsigned.UInt[unsigned.U128, unsigned.B1], dim.U1, int]()
	require.Len(t, s.AsSlice(), 2*dim.MaxValue+1)

	require.ErrorIs(t, recoverError(func() { s.Shape() }), conv.ErrBridge)
	require.ErrorIs(t, recoverError(func() { s.Strides() }), conv.ErrBridge)
}

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() { err, _ = recover().(error) }()
	f()

	return nil
}
