// SPDX-License-Identifier: MIT

// Package conv bridges the two numeral families of this module.
//
// A size descriptor is any sealed type with Num() int. Three spellings are
// supported for every length N up to dim.MaxValue:
//
//	dim.UN           named dimension (native to the matrix engine)
//	unsigned.UN      canonical binary spelling
//	unsigned.ConstN  literal spelling
//
// plus any canonical hand-built unsigned.UInt chain. All of them report the
// same array-length representation (the result type of ArrLen) and the same
// named representation (NewNalg).
//
// The package provides three relations on descriptors:
//
//   - Conv[L]: "this descriptor has array-length representation L". It is the
//     constraint every other relation is built from.
//   - Corr (ArrayToGenericN / GenericToArrayN): "this descriptor has exactly
//     N elements", linking it to the Go array type [N]E.
//   - Comp (Fwd / Bwd): "these two descriptors share L", allowing a container
//     to change its size parameter for free.
//
// Every relation is checked by the type checker: a descriptor that does not
// satisfy Conv[L] for the right L makes the instantiation fail to compile.
// Nothing in this package validates sizes at run time.
//
//go:generate go run ../cmd/dimgen corr -o corr_gen.go
package conv
