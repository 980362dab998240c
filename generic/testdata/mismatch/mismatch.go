// SPDX-License-Identifier: MIT

// Package mismatch pairs descriptors of different sizes.
// Every line marked "want error" must be rejected by the type checker.
package mismatch

import (
	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/generic"
	"github.com/katalvlaran/genstore/unsigned"
)

func Rows() {
	a := generic.New[dim.U2, dim.U3, float64]()
	_ = generic.Conv[unsigned.U3, unsigned.U3](a) // want error
}

func Cols() {
	a := generic.New[dim.U2, dim.U3, float64]()
	_ = generic.Conv[unsigned.Const2, unsigned.Const2](a) // want error
}

func Arity() {
	_ = conv.ArrayToGeneric3[dim.U2]([3]int{1, 2, 3}) // want error
}

func Retag() {
	g := conv.ArrayToGeneric2[dim.U2]([2]int{1, 2})
	_ = conv.Fwd[unsigned.U1](g) // want error
}
