// SPDX-License-Identifier: MIT

package unsigned

import "github.com/katalvlaran/genstore/internal/seal"

// Bit is a single binary digit type: B0 or B1.
type Bit interface {
	Bit() int
}

// B0 is the binary digit zero.
type B0 struct{}

// Bit returns 0.
func (B0) Bit() int { return 0 }

// B1 is the binary digit one.
type B1 struct{}

// Bit returns 1.
func (B1) Bit() int { return 1 }

// Unsigned is a type-level natural number.
type Unsigned interface {
	// Num returns the number spelled by the type.
	Num() int

	// Sealed restricts implementations to this module.
	Sealed() seal.Seal
}

// Splitter is implemented by every non-zero binary spelling.
// Split returns the more significant part and the least significant bit.
type Splitter interface {
	Split() (Unsigned, Bit)
}

// UTerm terminates a binary spelling and stands for zero.
type UTerm struct{}

// Num returns 0.
func (UTerm) Num() int { return 0 }

// ArrLen returns the canonical array-length spelling of zero, UTerm itself.
func (UTerm) ArrLen() UTerm { return UTerm{} }

// Sealed implements Unsigned.
func (UTerm) Sealed() seal.Seal { return seal.Seal{} }

// UInt stands for 2*U + B.
// Complexity: Num is O(log N), one call per bit.
type UInt[U Unsigned, B Bit] struct{}

// Num returns 2*U + B.
func (UInt[U, B]) Num() int {
	var (
		high U
		low  B
	)

	return 2*high.Num() + low.Bit()
}

// ArrLen returns the receiver: a binary spelling is its own array-length representation.
func (n UInt[U, B]) ArrLen() UInt[U, B] { return n }

// Split returns U and B as values.
func (UInt[U, B]) Split() (Unsigned, Bit) {
	var (
		high U
		low  B
	)

	return high, low
}

// Sealed implements Unsigned.
func (UInt[U, B]) Sealed() seal.Seal { return seal.Seal{} }

// Compile-time conformance checks.
var (
	_ Unsigned = UTerm{}
	_ Unsigned = U5{}
	_ Splitter = U5{}
	_ Unsigned = Const5{}
)
