// SPDX-License-Identifier: MIT
package generic_test

import (
	"fmt"

	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/generic"
	"github.com/katalvlaran/genstore/matrix"
	"github.com/katalvlaran/genstore/unsigned"
)

// ExampleConv declares a matrix with named dimensions, hands it to code that
// spells sizes in binary, and multiplies it by its transpose.
func ExampleConv() {
	a, _ := generic.FromRows[dim.U2, dim.U3]([][]int{
		{1, 2, 4},
		{5, -7, 0},
	})

	b := generic.Conv[unsigned.U2, unsigned.Const3](a)
	bt, _ := matrix.Transpose[int](b)
	p, _ := matrix.Mul[int](b, bt)

	sq, _ := generic.FromMatrix[unsigned.U2, unsigned.U2, int](p)
	fmt.Print(sq)
	// Output:
	// [21, -9]
	// [-9, 74]
}

// ExampleIntoDense hands a fixed-size matrix to the engine without copying.
func ExampleIntoDense() {
	m, _ := generic.FromRows[dim.U2, dim.U2]([][]float64{
		{1, 3},
		{-4, 4},
	})
	d := generic.IntoDense(m)
	det, _ := matrix.Determinant[float64](d)
	fmt.Println(det)
	// Output:
	// 16
}
