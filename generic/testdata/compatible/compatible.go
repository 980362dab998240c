// SPDX-License-Identifier: MIT

// Package compatible spells the same sizes in every descriptor family.
// It must type-check cleanly.
package compatible

import (
	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/generic"
	"github.com/katalvlaran/genstore/unsigned"
)

// Chain converts through all three spellings and back.
func Chain() *generic.Matrix[float64, dim.U2, dim.U3] {
	a := generic.New[dim.U2, dim.U3, float64]()
	b := generic.Conv[unsigned.U2, unsigned.U3](a)
	c := generic.Conv[unsigned.Const2, unsigned.Const3](b)

	return generic.Conv[dim.U2, dim.U3](c)
}

// Column moves a raw array through a binary-sized container.
func Column() [4]int {
	g := conv.ArrayToGeneric4[unsigned.UInt[unsigned.UInt[unsigned.UInt[unsigned.UTerm, unsigned.B1], unsigned.B0], unsigned.B0]]([4]int{1, 2, 3, 4})
	h := conv.Fwd[dim.U4](g)

	return conv.GenericToArray4(conv.Bwd[unsigned.Const4](h))
}

// Empty exercises the zero size.
func Empty() garray.Array[int, unsigned.UTerm] {
	return conv.Fwd[unsigned.UTerm](conv.ArrayToGeneric0[dim.U0]([0]int{}))
}
