// SPDX-License-Identifier: MIT
package garray_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/unsigned"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	s := []int{1, 2, 3}
	a, err := garray.FromSlice[dim.U3](s)
	require.NoError(t, err)
	require.Equal(t, 3, a.Len())
	require.False(t, a.IsEmpty())

	a.Set(0, 10)
	require.Equal(t, 10, s[0], "FromSlice aliases its input")

	_, err = garray.FromSlice[dim.U2](s)
	require.ErrorIs(t, err, garray.ErrLengthMismatch)
	require.Panics(t, func() { garray.MustFromSlice[unsigned.U4](s) })

	e, err := garray.FromSlice[dim.U0]([]int(nil))
	require.NoError(t, err)
	require.NotNil(t, e.Slice())
	require.True(t, e.IsEmpty())
}

func TestCloneMapString(t *testing.T) {
	a := garray.MustFromSlice[unsigned.Const3]([]int{1, 2, 3})
	c := a.Clone()
	c.Set(1, 20)
	require.Equal(t, 2, a.At(1))

	sq := garray.Map(a, func(v int) float64 { return float64(v * v) })
	require.Equal(t, []float64{1, 4, 9}, sq.Slice())
	require.Equal(t, "[1 2 3]", a.String())
	require.Equal(t, 2, garray.New[dim.U2, bool]().Len())
}

func TestRetag(t *testing.T) {
	a := garray.MustFromSlice[dim.U2]([]int{1, 2})
	b := garray.Retag[unsigned.U2](a)
	require.Equal(t, a.Slice(), b.Slice())
	require.Panics(t, func() { garray.Retag[unsigned.U3](a) })
}

func TestChunksAndFlattenZeroCopy(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7}
	chunks, rest := garray.ChunksFromSlice[dim.U3](s)
	require.Len(t, chunks, 2)
	require.Equal(t, []int{4, 5, 6}, chunks[1].Slice())
	require.Equal(t, []int{7}, rest)

	flat := garray.SliceFromChunks(chunks)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, flat)
	require.Equal(t, unsafe.SliceData(s), unsafe.SliceData(flat))
}

func TestFlattenCopiesScatteredChunks(t *testing.T) {
	a := garray.MustFromSlice[dim.U2]([]int{1, 2})
	b := garray.MustFromSlice[dim.U2]([]int{3, 4})
	flat := garray.SliceFromChunks([]garray.Array[int, dim.U2]{a, b})
	require.Equal(t, []int{1, 2, 3, 4}, flat)

	flat[0] = 100
	require.Equal(t, 1, a.At(0))
}

func TestFlattenOutOfOrderChunks(t *testing.T) {
	chunks, _ := garray.ChunksFromSlice[dim.U2]([]int{1, 2, 3, 4})
	flat := garray.SliceFromChunks([]garray.Array[int, dim.U2]{chunks[1], chunks[0]})
	require.Equal(t, []int{3, 4, 1, 2}, flat)
}

func TestZeroLengthChunks(t *testing.T) {
	chunks, rest := garray.ChunksFromSlice[dim.U0]([]int{1, 2})
	require.Empty(t, chunks)
	require.Equal(t, []int{1, 2}, rest)
	require.NotNil(t, garray.SliceFromChunks([]garray.Array[int, dim.U0]{}))
}

func TestChunkAppendStaysInChunk(t *testing.T) {
	s := []int{1, 2, 3, 4}
	chunks, _ := garray.ChunksFromSlice[dim.U2](s)

	grown := append(chunks[0].Slice(), 77)
	require.Equal(t, []int{1, 2, 77}, grown)
	require.Equal(t, []int{1, 2, 3, 4}, s)
	require.Equal(t, []int{3, 4}, chunks[1].Slice())
}

func TestFlattenCopiesViews(t *testing.T) {
	s := []int{1, 2, 3, 4}
	chunks, _ := garray.ChunksFromSlice[dim.U2](s)
	for i := range chunks {
		chunks[i] = chunks[i].View()
	}
	require.True(t, chunks[0].IsView())
	require.True(t, garray.Retag[unsigned.U2](chunks[0]).IsView())
	require.False(t, chunks[0].Clone().IsView())

	flat := garray.SliceFromChunks(chunks)
	require.Equal(t, []int{1, 2, 3, 4}, flat)
	require.NotEqual(t, unsafe.SliceData(s), unsafe.SliceData(flat))

	flat[0] = 99
	require.Equal(t, 1, s[0])
}
