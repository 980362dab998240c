// SPDX-License-Identifier: MIT

// Package unsigned spells natural numbers as types, bit by bit.
//
// A number is either UTerm (zero) or UInt[U, B], which stands for 2*U + B,
// where B is one of the bit types B0 or B1. The package predeclares the
// canonical spellings U0 … U128 as aliases, so
//
//	unsigned.U6 == unsigned.UInt[unsigned.UInt[unsigned.UInt[unsigned.UTerm, unsigned.B1], unsigned.B1], unsigned.B0]
//
// holds at the type level. The canonical spelling of N is the array-length
// representation of N used by every other package of this module: a size
// descriptor reports it as the result type of its ArrLen method.
//
// Besides the binary spelling the package offers a literal one, Const0 …
// Const128, whose ArrLen is the canonical binary alias of the same number.
//
// Only canonical spellings (no leading B0 bits) are supported. A hand-built
// UInt[UTerm, B0] still reports Num() == 0, but its ArrLen is not U0 and it is
// therefore not compatible with any other spelling of zero.
//
//go:generate go run ../cmd/dimgen unsigned -o consts_gen.go
package unsigned
