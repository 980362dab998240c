// SPDX-License-Identifier: MIT

package dim

import "fmt"

// Dim is an axis length as seen by the matrix engine.
type Dim interface {
	// Value returns the axis length.
	Value() int
}

// Dyn is a runtime-sized axis length.
type Dyn int

// Value returns int(d).
func (d Dyn) Value() int { return int(d) }

// Compile-time conformance checks.
var (
	_ Dim = U0{}
	_ Dim = U1{}
	_ Dim = Dyn(0)
)

// FromValue returns the named dimension of length n.
// Returns ErrUnsupported when n < 0 or n > MaxValue.
// Complexity: O(1) table lookup.
func FromValue(n int) (Dim, error) {
	if n < 0 || n > MaxValue {
		return nil, fmt.Errorf("FromValue(%d): %w", n, ErrUnsupported)
	}

	return named[n], nil
}

// Add returns the named dimension a + b.
func Add(a, b Dim) (Dim, error) {
	d, err := FromValue(a.Value() + b.Value())
	if err != nil {
		return nil, fmt.Errorf("Add(%d,%d): %w", a.Value(), b.Value(), err)
	}

	return d, nil
}

// Mul returns the named dimension a * b.
func Mul(a, b Dim) (Dim, error) {
	d, err := FromValue(a.Value() * b.Value())
	if err != nil {
		return nil, fmt.Errorf("Mul(%d,%d): %w", a.Value(), b.Value(), err)
	}

	return d, nil
}

// Equal reports whether a and b describe the same length.
func Equal(a, b Dim) bool { return a.Value() == b.Value() }
