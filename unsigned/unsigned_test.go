// SPDX-License-Identifier: MIT
package unsigned_test

import (
	"testing"

	"github.com/katalvlaran/genstore/unsigned"
	"github.com/stretchr/testify/require"
)

func TestBinaryNum(t *testing.T) {
	require.Equal(t, 0, unsigned.UTerm{}.Num())
	require.Equal(t, 0, unsigned.U0{}.Num())
	require.Equal(t, 1, unsigned.U1{}.Num())
	require.Equal(t, 6, unsigned.U6{}.Num())
	require.Equal(t, 97, unsigned.U97{}.Num())
	require.Equal(t, unsigned.MaxConst, unsigned.U128{}.Num())

	// A hand-built canonical chain is the alias itself.
	var five unsigned.UInt[unsigned.UInt[unsigned.UInt[unsigned.UTerm, unsigned.B1], unsigned.B0], unsigned.B1]
	require.Equal(t, unsigned.U5{}, five)
	require.Equal(t, 5, five.Num())
}

func TestArrLen(t *testing.T) {
	require.Equal(t, unsigned.U3{}, unsigned.U3{}.ArrLen())
	require.Equal(t, unsigned.U3{}, unsigned.Const3{}.ArrLen())
	require.Equal(t, unsigned.UTerm{}, unsigned.Const0{}.ArrLen())
	require.Equal(t, 42, unsigned.Const42{}.Num())
}

func TestSplit(t *testing.T) {
	high, low := unsigned.U6{}.Split()
	require.Equal(t, unsigned.U3{}, high)
	require.Equal(t, 0, low.Bit())

	high, low = unsigned.U1{}.Split()
	require.Equal(t, unsigned.UTerm{}, high)
	require.Equal(t, 1, low.Bit())
}
