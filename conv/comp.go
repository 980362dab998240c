// SPDX-License-Identifier: MIT

package conv

import (
	"github.com/katalvlaran/genstore/garray"
	"github.com/katalvlaran/genstore/unsigned"
)

// Fwd retags a container sized by Self as one sized by Other.
//
// Both descriptors must satisfy Conv[L] for the same L, so only the size
// parameter changes: the result shares the backing elements of value.
// Instantiating Fwd with descriptors of different sizes does not compile.
//
//	cols := conv.Fwd[unsigned.U3](garray.New[dim.U3, int]())
func Fwd[Other Conv[L], Self Conv[L], E any, L unsigned.Unsigned](value garray.Array[E, Self]) garray.Array[E, Other] {
	return garray.Retag[Other](value)
}

// Bwd is the inverse of Fwd: it retags a container sized by Other as one sized by Self.
func Bwd[Self Conv[L], Other Conv[L], E any, L unsigned.Unsigned](value garray.Array[E, Other]) garray.Array[E, Self] {
	return garray.Retag[Self](value)
}
