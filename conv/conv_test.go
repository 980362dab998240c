// SPDX-License-Identifier: MIT
package conv_test

import (
	"testing"

	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/unsigned"
	"github.com/stretchr/testify/require"
)

func TestNewNalgAllSpellings(t *testing.T) {
	require.Equal(t, dim.U0{}, conv.NewNalg[unsigned.UTerm]())
	require.Equal(t, dim.U0{}, conv.NewNalg[unsigned.Const0]())
	require.Equal(t, dim.U1{}, conv.NewNalg[unsigned.U1]())
	require.Equal(t, dim.U3{}, conv.NewNalg[unsigned.U3]())
	require.Equal(t, dim.U3{}, conv.NewNalg[unsigned.Const3]())
	require.Equal(t, dim.U3{}, conv.NewNalg[dim.U3]())
	require.Equal(t, dim.U100{}, conv.NewNalg[unsigned.U100]())
	require.Equal(t, dim.U128{}, conv.NewNalg[unsigned.U128]())
}

func TestNumMatchesNalg(t *testing.T) {
	check := func(num int, nalg dim.Dim, arrLen int) {
		require.Equal(t, num, nalg.Value())
		require.Equal(t, num, arrLen)
	}
	check(conv.Num[unsigned.U21](), conv.NewNalg[unsigned.U21](), unsigned.U21{}.ArrLen().Num())
	check(conv.Num[unsigned.Const21](), conv.NewNalg[unsigned.Const21](), unsigned.Const21{}.ArrLen().Num())
	check(conv.Num[dim.U21](), conv.NewNalg[dim.U21](), dim.U21{}.ArrLen().Num())
	check(conv.Num[dim.U64](), conv.NewNalg[unsigned.U64](), unsigned.Const64{}.ArrLen().Num())
}

func TestBridgeDefectPanics(t *testing.T) {
	// 256 is a valid binary spelling but has no named dimension.
	type u256 = unsigned.UInt[unsigned.U128, unsigned.B0]
	require.Equal(t, 256, conv.Num[u256]())
	require.PanicsWithError(t, "conv: descriptor has no named dimension: Mul(128,2): FromValue(256): dim: unsupported dimension", func() {
		conv.NewNalg[u256]()
	})
}

func TestCorrRoundTrip(t *testing.T) {
	a := [5]string{"a", "b", "c", "d", "e"}
	g := conv.ArrayToGeneric5[unsigned.Const5](a)
	require.Equal(t, 5, g.Len())
	require.Equal(t, "c", g.At(2))
	require.Equal(t, a, conv.GenericToArray5(g))

	var empty [0]int
	require.Equal(t, empty, conv.GenericToArray0(conv.ArrayToGeneric0[dim.U0](empty)))
	require.Equal(t, 32, conv.MaxArity)
}

func TestCompRoundTrip(t *testing.T) {
	g := garray.MustFromSlice[dim.U4]([]int{1, 2, 3, 4})

	fwd := conv.Fwd[unsigned.U4](g)
	require.Equal(t, []int{1, 2, 3, 4}, fwd.Slice())
	require.Same(t, &g.Slice()[0], &fwd.Slice()[0])

	back := conv.Bwd[dim.U4](fwd)
	require.Equal(t, g, back)

	lit := conv.Fwd[unsigned.Const4](back)
	require.Equal(t, 4, lit.Len())
}
