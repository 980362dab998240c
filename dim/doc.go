// SPDX-License-Identifier: MIT

// Package dim is the named-dimension family used by the matrix engine to size
// matrix axes.
//
// Every length 0 … MaxValue has its own zero-size type U0 … U<MaxValue>; the
// engine reads an axis length through the Dim interface. Each named type is
// also a size descriptor: it reports its array-length representation (the
// canonical binary alias of package unsigned) through ArrLen, which is what
// lets a matrix declared with dim.U3 be reinterpreted as one declared with
// unsigned.U3 or unsigned.Const3 and vice versa.
//
// Dyn is the runtime-sized dimension of the engine's own Dense matrices; it
// is never a descriptor.
//
//go:generate go run ../cmd/dimgen dims -o dims_gen.go
package dim
