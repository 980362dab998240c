// SPDX-License-Identifier: MIT
package generic_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/generic"
	"github.com/katalvlaran/genstore/matrix"
	"github.com/katalvlaran/genstore/storage"
	"github.com/katalvlaran/genstore/unsigned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsOf reads m back into a row-major literal.
func rowsOf[T matrix.Scalar](t *testing.T, m matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestRawArrayRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"0x3 named by literal", func(t *testing.T) {
			e := conv.ArrayToGeneric0[dim.U0]([0]int{})
			m := generic.FromColumns(conv.ArrayToGeneric3[unsigned.Const3]([3]garray.Array[int, dim.U0]{e, e, e}))
			require.Equal(t, 0, m.Rows())
			require.Equal(t, 3, m.Cols())
			require.Empty(t, rowsOf[int](t, m))

			cols := conv.GenericToArray3(generic.IntoColumns(m))
			for _, col := range cols {
				require.Equal(t, [0]int{}, conv.GenericToArray0(col))
			}
		}},
		{"2x0 named by binary", func(t *testing.T) {
			m := generic.FromColumns(conv.ArrayToGeneric0[unsigned.U0]([0]garray.Array[int, dim.U2]{}))
			require.Equal(t, [][]int{{}, {}}, rowsOf[int](t, m))
			require.Equal(t, [0]garray.Array[int, dim.U2]{}, conv.GenericToArray0(generic.IntoColumns(m)))
		}},
		{"1x1 binary by named", func(t *testing.T) {
			c := conv.ArrayToGeneric1[unsigned.U1]([1]int{7})
			m := generic.FromColumns(conv.ArrayToGeneric1[dim.U1]([1]garray.Array[int, unsigned.U1]{c}))
			require.Equal(t, [][]int{{7}}, rowsOf[int](t, m))

			cols := conv.GenericToArray1(generic.IntoColumns(m))
			require.Equal(t, [1]int{7}, conv.GenericToArray1(cols[0]))
		}},
		{"4x1 literal by binary", func(t *testing.T) {
			c := conv.ArrayToGeneric4[unsigned.Const4]([4]float64{1, 2, 3, 4})
			m := generic.FromColumns(conv.ArrayToGeneric1[unsigned.U1]([1]garray.Array[float64, unsigned.Const4]{c}))
			require.Equal(t, [][]float64{{1}, {2}, {3}, {4}}, rowsOf[float64](t, m))

			cols := conv.GenericToArray1(generic.IntoColumns(m))
			require.Equal(t, [4]float64{1, 2, 3, 4}, conv.GenericToArray4(cols[0]))
		}},
		{"2x3 binary by binary", func(t *testing.T) {
			c0 := conv.ArrayToGeneric2[unsigned.U2]([2]int{1, 2})
			c1 := conv.ArrayToGeneric2[unsigned.U2]([2]int{3, 4})
			c2 := conv.ArrayToGeneric2[unsigned.U2]([2]int{5, 6})
			m := generic.FromColumns(conv.ArrayToGeneric3[unsigned.U3]([3]garray.Array[int, unsigned.U2]{c0, c1, c2}))
			require.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, rowsOf[int](t, m))

			cols := conv.GenericToArray3(generic.IntoColumns(m))
			got := [3][2]int{}
			for j, col := range cols {
				got[j] = conv.GenericToArray2(col)
			}
			require.Equal(t, [3][2]int{{1, 2}, {3, 4}, {5, 6}}, got)
		}},
		{"3x2 named by literal", func(t *testing.T) {
			c0 := conv.ArrayToGeneric3[dim.U3]([3]int{1, 2, 3})
			c1 := conv.ArrayToGeneric3[dim.U3]([3]int{4, 5, 6})
			m := generic.FromColumns(conv.ArrayToGeneric2[unsigned.Const2]([2]garray.Array[int, dim.U3]{c0, c1}))
			require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, rowsOf[int](t, m))

			cols := conv.GenericToArray2(generic.IntoColumns(m))
			require.Equal(t, [3]int{1, 2, 3}, conv.GenericToArray3(cols[0]))
			require.Equal(t, [3]int{4, 5, 6}, conv.GenericToArray3(cols[1]))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestConvRoundTripZeroCopy(t *testing.T) {
	a, err := generic.FromRows[dim.U2, dim.U3]([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	want := generic.Clone(a)
	ptr := a.Ptr()

	b := generic.Conv[unsigned.U2, unsigned.Const3](a)
	require.Same(t, ptr, b.Ptr(), "Conv must not copy")
	require.Panics(t, func() { a.AsSlice() }, "source is consumed")

	c := generic.Conv[dim.U2, dim.U3](b)
	require.Same(t, ptr, c.Ptr())
	require.True(t, generic.Equal(want, c))
}

func TestStridesAndContiguity(t *testing.T) {
	check := func(rows, cols int, m matrix.Contiguous[int]) {
		r, c := m.Shape()
		rs, cs := m.Strides()
		assert.Equal(t, rows, r.Value())
		assert.Equal(t, cols, c.Value())
		assert.Equal(t, 1, rs.Value())
		assert.Equal(t, rows, cs.Value())
		assert.True(t, m.IsContiguous())
		assert.Len(t, m.AsSlice(), rows*cols)
	}

	check(0, 0, generic.New[dim.U0, dim.U0, int]())
	check(1, 4, generic.New[unsigned.U1, unsigned.Const4, int]())
	check(3, 2, generic.New[dim.U3, unsigned.U2, int]())
	check(17, 31, generic.New[unsigned.U17, dim.U31, int]())
	check(64, 1, generic.New[unsigned.Const64, dim.U1, int]())
}

func TestLiteralEqualAcrossFamilies(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 5, 6}}

	named, err := generic.FromRows[dim.U2, dim.U3](rows)
	require.NoError(t, err)
	binary, err := generic.FromRows[unsigned.U2, unsigned.U3](rows)
	require.NoError(t, err)
	literal, err := generic.FromRows[unsigned.Const2, unsigned.Const3](rows)
	require.NoError(t, err)

	for _, other := range []matrix.Matrix[int]{binary, literal} {
		eq, err := matrix.Equal[int](named, other)
		require.NoError(t, err)
		require.True(t, eq)
	}
	require.Equal(t, named.AsSlice(), literal.AsSlice())
}

func TestFromRowsMismatch(t *testing.T) {
	_, err := generic.FromRows[dim.U2, dim.U2]([][]int{{1, 2}})
	require.ErrorIs(t, err, generic.ErrDimensionMismatch)
	require.ErrorIs(t, err, storage.ErrDimensionMismatch)

	_, err = generic.FromRows[dim.U2, dim.U2]([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, generic.ErrDimensionMismatch)
}

func TestTransposeLaw(t *testing.T) {
	a, err := generic.FromRows[dim.U2, dim.U3]([][]float64{
		{1, 2, 4},
		{5, -7, 0},
	})
	require.NoError(t, err)

	at, err := matrix.Transpose[float64](a)
	require.NoError(t, err)
	b, err := generic.FromMatrix[dim.U3, dim.U2, float64](at)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(j, i)
			require.Equal(t, x, y)
		}
	}

	p, err := matrix.Mul[float64](a, b)
	require.NoError(t, err)
	sq, err := generic.FromMatrix[unsigned.U2, unsigned.U2, float64](p)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{21, -9}, {-9, 74}}, rowsOf[float64](t, sq))
}

func TestInverseAndDeterminant(t *testing.T) {
	a, err := generic.FromRows[unsigned.U2, unsigned.U2]([][]float64{
		{1, 3},
		{-4, 4},
	})
	require.NoError(t, err)

	det, err := matrix.Determinant[float64](a)
	require.NoError(t, err)
	require.Equal(t, 16.0, det)

	inv, err := matrix.Inverse[float64](a)
	require.NoError(t, err)
	got, err := generic.FromMatrix[dim.U2, dim.U2, float64](inv)
	require.NoError(t, err)

	want, err := generic.FromRows[dim.U2, dim.U2]([][]float64{
		{4.0 / 16, -3.0 / 16},
		{4.0 / 16, 1.0 / 16},
	})
	require.NoError(t, err)
	ok, err := matrix.AllClose[float64](got, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFromMatrixMovesBuffer(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	first := unsafe.SliceData(d.AsSlice())

	m, err := generic.FromMatrix[dim.U2, dim.U2, int](d)
	require.NoError(t, err)
	require.Equal(t, first, unsafe.SliceData(m.AsSlice()))
	require.Equal(t, 0, d.Rows(), "source storage is relinquished")

	back := generic.IntoDense(m)
	require.Equal(t, first, unsafe.SliceData(back.AsSlice()))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, rowsOf[int](t, back))
}

func TestFromMatrixMismatch(t *testing.T) {
	d, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)

	_, err = generic.FromMatrix[dim.U3, dim.U2, int](d)
	require.ErrorIs(t, err, generic.ErrDimensionMismatch)
	require.Equal(t, 2, d.Rows(), "source untouched on error")
}

func TestSetThroughFacade(t *testing.T) {
	m := generic.New[dim.U2, dim.U2, int]()
	require.NoError(t, m.Set(1, 0, 7))
	require.ErrorIs(t, m.Set(2, 0, 7), matrix.ErrOutOfRange)

	cols := generic.Columns(m)
	require.Equal(t, []int{0, 7}, cols.At(0).Slice())
	require.Equal(t, "[0, 0]\n[7, 0]\n", m.String())
}
