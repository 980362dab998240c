// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts empty ones.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense[float64](0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 5, m.Cols())
	require.NotNil(t, m.Ptr()) // sentinel pointer even when empty
}

// TestShapeOverflow rejects shapes whose element count does not fit in an int.
func TestShapeOverflow(t *testing.T) {
	big := math.MaxInt/2 + 1

	_, err := matrix.NewDense[int](big, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.DenseFromRawParts([]int{}, big, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.DenseFromRawParts([]int{}, 2, big)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestColumnMajorLayout checks the index formula i + j*rows and the strides.
func TestColumnMajorLayout(t *testing.T) {
	m := mustRows(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, m.AsSlice())

	rs, cs := m.Strides()
	require.Equal(t, 1, rs.Value())
	require.Equal(t, 2, cs.Value())
	require.True(t, m.IsContiguous())

	r, c := m.Shape()
	require.True(t, dim.Equal(r, dim.U2{}))
	require.True(t, dim.Equal(c, dim.U3{}))
}

// TestNewDenseFromRowsRagged rejects rows of different lengths.
func TestNewDenseFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestDenseFromRawPartsNoCopy verifies the buffer is adopted as is.
func TestDenseFromRawPartsNoCopy(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	m, err := matrix.DenseFromRawParts(buf, 2, 2)
	require.NoError(t, err)

	buf[3] = 9
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	_, err = matrix.DenseFromRawParts(buf, 3, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.DenseFromRawParts(buf, -2, -2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAllocateFromIterator covers exact, short and long sequences.
func TestAllocateFromIterator(t *testing.T) {
	m, err := matrix.AllocateFromIterator(dim.U2{}, dim.U2{}, slices.Values([]int{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3}, {2, 4}}, rowsOf[int](t, m))

	_, err = matrix.AllocateFromIterator(dim.U2{}, dim.U2{}, slices.Values([]int{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.AllocateFromIterator(dim.U1{}, dim.U2{}, slices.Values([]int{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.AllocateFromIterator(dim.U0{}, dim.U3{}, slices.Values([]int(nil)))
	require.NoError(t, err)
	require.Equal(t, 3, empty.Cols())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.CloneOwned()
	require.NoError(t, clone.Set(0, 0, 3))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Same(t, m, m.IntoOwned())
}

// TestForgetElements leaves an empty but usable matrix.
func TestForgetElements(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}})
	m.ForgetElements()
	require.Equal(t, 0, m.Rows())
	require.Empty(t, m.AsSlice())
}

// TestDenseString prints rows in order.
func TestDenseString(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
