// SPDX-License-Identifier: MIT

package conv

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genstore/dim"
	"github.com/katalvlaran/genstore/internal/seal"
	"github.com/katalvlaran/genstore/unsigned"
)

// ErrBridge reports a descriptor whose named representation cannot be built,
// such as a binary spelling above dim.MaxValue. It is only ever raised through
// a panic.
var ErrBridge = errors.New("conv: descriptor has no named dimension")

// Descriptor is a compile-time size token.
type Descriptor interface {
	// Num returns the size described by the type.
	Num() int

	// Sealed restricts implementations to this module.
	Sealed() seal.Seal
}

// Conv is a Descriptor whose array-length representation is L.
//
// Two descriptors satisfying Conv[L] for the same L are compatible: they
// describe the same size and may be exchanged with Fwd/Bwd.
type Conv[L unsigned.Unsigned] interface {
	Descriptor

	// ArrLen returns the array-length representation.
	ArrLen() L
}

// Num returns D's size.
func Num[D Descriptor]() int {
	var d D

	return d.Num()
}

// NewNalg returns D's named-dimension representation.
//
// Derivation rules:
//   - a named dimension is its own representation;
//   - UTerm is U0;
//   - UInt[U, B0] doubles U's representation;
//   - UInt[U, B1] doubles U's representation and adds one;
//   - a literal ConstN is looked up by value.
//
// The result is a fresh value on every call and NewNalg has no side effects.
// It panics with ErrBridge when D.Num() > dim.MaxValue.
// Complexity: O(1) for named and literal spellings, O(log N) for binary ones.
func NewNalg[D Descriptor]() dim.Dim {
	var d D

	return nalgOf(d)
}

// nalgOf derives the named representation of an arbitrary descriptor value.
func nalgOf(d Descriptor) dim.Dim {
	switch v := any(d).(type) {
	case dim.Dim:
		return v
	case unsigned.UTerm:
		return dim.U0{}
	case unsigned.Splitter:
		high, low := v.Split()
		doubled := mustDim(dim.Mul(nalgOf(high), dim.U2{}))
		if low.Bit() == 0 {
			return doubled
		}

		return mustDim(dim.Add(doubled, dim.U1{}))
	default:
		return mustDim(dim.FromValue(d.Num()))
	}
}

// mustDim panics with ErrBridge when the generated named table is too small.
func mustDim(d dim.Dim, err error) dim.Dim {
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrBridge, err))
	}

	return d
}
