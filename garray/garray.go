// SPDX-License-Identifier: MIT

// Package garray provides Array, a fixed-capacity container whose length is
// fixed by a type parameter instead of a constant.
//
// Purpose:
//   - Size a container with any size descriptor (anything with Num() int),
//     so that Array[E, dim.U3] and Array[E, unsigned.U3] are distinct types
//     that share one layout.
//   - Offer the chunk/flatten utilities the storage layer is built on:
//     ChunksFromSlice cuts a flat slice into equal views, SliceFromChunks
//     glues them back, both without copying when the memory is contiguous.
//
// Behavior highlights:
//   - len(a.Slice()) == N.Num() always holds for arrays built by this package.
//   - Array has reference semantics like a slice; Clone copies the elements.
//   - An Array marked as a view (View) borrows memory another owner still
//     uses; SliceFromChunks never adopts the memory of a view.
//   - Index errors panic, exactly like Go arrays.
package garray

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrLengthMismatch is returned when a slice length differs from N.Num().
var ErrLengthMismatch = errors.New("garray: length mismatch")

// Length is the size parameter of an Array.
type Length interface {
	Num() int
}

// Array is a container of exactly N.Num() elements.
type Array[E any, N Length] struct {
	elems []E  // len == N.Num(); cap may reach into the following chunks
	view  bool // borrowed from a live owner
}

// lengthOf returns N.Num() for a type parameter N.
func lengthOf[N Length]() int {
	var n N

	return n.Num()
}

// New returns a zero-filled Array.
// Complexity: O(N).
func New[N Length, E any]() Array[E, N] {
	return Array[E, N]{elems: make([]E, lengthOf[N]())}
}

// FromSlice wraps s without copying.
// Returns ErrLengthMismatch when len(s) != N.Num().
// The returned Array aliases s; its capacity is clipped to N.Num().
func FromSlice[N Length, E any](s []E) (Array[E, N], error) {
	n := lengthOf[N]()
	if len(s) != n {
		return Array[E, N]{}, fmt.Errorf("FromSlice: got %d, want %d: %w", len(s), n, ErrLengthMismatch)
	}
	if s == nil {
		s = make([]E, 0)
	}

	return Array[E, N]{elems: s[:n:n]}, nil
}

// MustFromSlice is FromSlice for callers whose length is guaranteed by
// construction. It panics on ErrLengthMismatch.
func MustFromSlice[N Length, E any](s []E) Array[E, N] {
	a, err := FromSlice[N](s)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns N.Num().
func (a Array[E, N]) Len() int { return len(a.elems) }

// IsEmpty reports whether N.Num() == 0.
func (a Array[E, N]) IsEmpty() bool { return len(a.elems) == 0 }

// Slice returns the elements without copying. The result is capacity-clipped,
// so appending to it never writes into neighbouring memory.
func (a Array[E, N]) Slice() []E { return a.elems[:len(a.elems):len(a.elems)] }

// View returns a with the same elements, marked as borrowed.
func (a Array[E, N]) View() Array[E, N] {
	a.view = true

	return a
}

// IsView reports whether a borrows its elements from a live owner.
func (a Array[E, N]) IsView() bool { return a.view }

// At returns element i.
func (a Array[E, N]) At(i int) E { return a.elems[i] }

// Set assigns element i.
func (a Array[E, N]) Set(i int, v E) { a.elems[i] = v }

// Clone returns an independent copy.
// Complexity: O(N).
func (a Array[E, N]) Clone() Array[E, N] {
	out := make([]E, len(a.elems))
	copy(out, a.elems)

	return Array[E, N]{elems: out}
}

// String implements fmt.Stringer.
func (a Array[E, N]) String() string { return fmt.Sprint(a.elems) }

// Map applies f to every element, in order, into a fresh Array.
// Complexity: O(N) calls of f.
func Map[E, F any, N Length](a Array[E, N], f func(E) F) Array[F, N] {
	out := make([]F, len(a.elems))
	for i, v := range a.elems {
		out[i] = f(v)
	}

	return Array[F, N]{elems: out}
}

// Retag changes the length parameter without touching the elements.
// It panics when M.Num() != N.Num(): callers must prove compatibility at
// compile time (see conv.Fwd); the check only guards against a defect.
func Retag[M Length, E any, N Length](a Array[E, N]) Array[E, M] {
	if m := lengthOf[M](); m != len(a.elems) {
		panic(fmt.Errorf("Retag: got %d, want %d: %w", len(a.elems), m, ErrLengthMismatch))
	}

	return Array[E, M]{elems: a.elems, view: a.view}
}

// ChunksFromSlice cuts s into consecutive Arrays of N.Num() elements each and
// returns the leftover tail. No element is copied: every chunk aliases s.
//
// When N.Num() == 0 there is no way to tell how many chunks s holds; the
// result is then empty and rest is s.
// Complexity: O(len(s)/N) slice headers.
func ChunksFromSlice[N Length, E any](s []E) (chunks []Array[E, N], rest []E) {
	n := lengthOf[N]()
	if n == 0 {
		return []Array[E, N]{}, s
	}

	count := len(s) / n
	chunks = make([]Array[E, N], count)
	for i := 0; i < count; i++ {
		chunks[i] = Array[E, N]{elems: s[i*n : (i+1)*n]}
	}

	return chunks, s[count*n:]
}

// SliceFromChunks concatenates chunks into one slice.
// When the chunks already sit back-to-back in memory (as produced by
// ChunksFromSlice) and none of them is a view, the result aliases them and
// nothing is copied; otherwise the elements are copied into a fresh buffer once.
// Complexity: O(len(chunks)) to detect contiguity, plus O(total) on copy.
func SliceFromChunks[N Length, E any](chunks []Array[E, N]) []E {
	n := lengthOf[N]()
	total := n * len(chunks)
	if total == 0 {
		return make([]E, 0)
	}
	if contiguous(chunks) {
		return unsafe.Slice(unsafe.SliceData(chunks[0].elems), total)
	}

	out := make([]E, 0, total)
	for _, c := range chunks {
		out = append(out, c.elems...)
	}

	return out
}

// contiguous reports whether no chunk is a view, every chunk starts right
// where the previous one ends and the first chunk's backing array spans all
// of them.
func contiguous[N Length, E any](chunks []Array[E, N]) bool {
	for _, c := range chunks {
		if c.view {
			return false
		}
	}

	var zero E
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return false
	}
	if cap(chunks[0].elems) < len(chunks[0].elems)*len(chunks) {
		return false
	}

	var prev unsafe.Pointer
	for i, c := range chunks {
		p := unsafe.Pointer(unsafe.SliceData(c.elems))
		if i > 0 && p != unsafe.Add(prev, uintptr(len(chunks[i-1].elems))*size) {
			return false
		}
		prev = p
	}

	return true
}
