// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/genstore/matrix"
)

// ExampleInverse inverts a 2×2 matrix and reads its determinant.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 3},
		{-4, 4},
	})
	det, _ := matrix.Determinant[float64](a)
	inv, _ := matrix.Inverse[float64](a)
	fmt.Println("det =", det)
	fmt.Print(inv)
	// Output:
	// det = 16
	// [0.25, -0.1875]
	// [0.25, 0.0625]
}

// ExampleMul multiplies a matrix by its transpose.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]int{
		{1, 2, 4},
		{5, -7, 0},
	})
	at, _ := matrix.T[int](a)
	p, _ := matrix.Mul[int](a, at)
	fmt.Print(p)
	// Output:
	// [21, -9]
	// [-9, 74]
}
