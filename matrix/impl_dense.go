// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide the engine's owned matrix: a packed column-major buffer with the
//     explicit index formula i + j*rows.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve as its own Storage so kernels can treat it like any wrapped storage.
//   - Provide the engine "allocator": AllocateFromIterator and DenseFromRawParts.
//
// AI-Hints:
//   - Prefer fast-paths on contiguous storages in hot algebra (see impl_linear_algebra.go).
//   - Use DenseFromRawParts to adopt a buffer without copying it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/katalvlaran/genstore/dim"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// elementCount returns rows*cols, or ErrInvalidDimensions when either is
// negative or the product does not fit in an int.
func elementCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return 0, fmt.Errorf("%dx%d overflows: %w", rows, cols, ErrInvalidDimensions)
	}

	return rows * cols, nil
}

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in column-major order (offset = i + j*r).
type Dense[T Scalar] struct {
	r, c int // row and column counts
	data []T // contiguous column-major storage (len == r*c, never nil)
}

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal: fixed-size storages may describe them.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, err
	}

	// make() zero-fills deterministically and never returns nil.
	return &Dense[T]{r: rows, c: cols, data: make([]T, n)}, nil
}

// NewDenseFromRows builds a matrix from a row-major literal.
//
// Implementation:
//   - Stage 1: derive the shape from len(rows) and len(rows[0]).
//   - Stage 2: reject ragged rows with ErrBadShape.
//   - Stage 3: scatter rows into column-major order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Mirrors the way matrices are written on paper; convenient in tests.
func NewDenseFromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}

	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			m.data[i+j*r] = rows[i][j]
		}
	}

	return m, nil
}

// DenseFromRawParts adopts data as the column-major buffer of a rows×cols matrix.
// The caller hands ownership over: data must not be used afterwards.
//
// Errors:
//   - ErrInvalidDimensions for negative shapes or when rows*cols overflows.
//   - ErrBadShape when len(data) != rows*cols.
//
// Complexity:
//   - Time O(1): nothing is copied.
func DenseFromRawParts[T Scalar](data []T, rows, cols int) (*Dense[T], error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("DenseFromRawParts: %w", err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("DenseFromRawParts: len %d, want %d: %w", len(data), n, ErrBadShape)
	}
	if data == nil {
		data = make([]T, 0)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// AllocateFromIterator fills a rows×cols matrix from seq in column-major order.
//
// Implementation:
//   - Stage 1: allocate once.
//   - Stage 2: pull exactly rows*cols elements from seq.
//
// Errors:
//   - ErrBadShape when seq yields fewer or more elements than rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AllocateFromIterator[T Scalar](rows, cols dim.Dim, seq iter.Seq[T]) (*Dense[T], error) {
	m, err := NewDense[T](rows.Value(), cols.Value())
	if err != nil {
		return nil, err
	}

	n := 0
	for v := range seq {
		if n == len(m.data) {
			return nil, fmt.Errorf("AllocateFromIterator: more than %d elements: %w", len(m.data), ErrBadShape)
		}
		m.data[n] = v
		n++
	}
	if n != len(m.data) {
		return nil, fmt.Errorf("AllocateFromIterator: got %d elements, want %d: %w", n, len(m.data), ErrBadShape)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row + col*m.r, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: out}
}

// String implements fmt.Stringer, one row per line.
func (m *Dense[T]) String() string { return formatMatrix[T](m) }

// formatMatrix prints m row by row.
func formatMatrix[T Scalar](m Matrix[T]) string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v, _ := m.At(i, j) // in range by construction
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ---------- Storage contract (a Dense is its own storage) ----------

// Ptr returns a pointer to the first element; a fresh non-nil sentinel when empty.
func (m *Dense[T]) Ptr() *T {
	if len(m.data) == 0 {
		return new(T)
	}

	return &m.data[0]
}

// PtrMut is Ptr for writers.
func (m *Dense[T]) PtrMut() *T { return m.Ptr() }

// Shape returns (rows, cols) as runtime dimensions.
func (m *Dense[T]) Shape() (dim.Dim, dim.Dim) { return dim.Dyn(m.r), dim.Dyn(m.c) }

// Strides returns (1, rows): the layout is column-major.
func (m *Dense[T]) Strides() (dim.Dim, dim.Dim) { return dim.Dyn(1), dim.Dyn(m.r) }

// IsContiguous is always true.
func (m *Dense[T]) IsContiguous() bool { return true }

// AsSlice returns the column-major buffer without copying.
func (m *Dense[T]) AsSlice() []T { return m.data }

// AsMutSlice returns the column-major buffer without copying.
func (m *Dense[T]) AsMutSlice() []T { return m.data }

// IntoOwned returns m itself.
func (m *Dense[T]) IntoOwned() *Dense[T] { return m }

// CloneOwned returns a deep copy.
func (m *Dense[T]) CloneOwned() *Dense[T] { return m.Clone() }

// ForgetElements detaches the buffer, leaving an empty matrix behind.
func (m *Dense[T]) ForgetElements() {
	m.r, m.c, m.data = 0, 0, make([]T, 0)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64]  = (*Dense[float64])(nil)
	_ Storage[float64] = (*Dense[float64])(nil)
	_ Contiguous[int]  = (*Dense[int])(nil)
	_ fmt.Stringer     = (*Dense[int])(nil)
)
