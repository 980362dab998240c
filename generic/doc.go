// SPDX-License-Identifier: MIT

// Package generic is the user-facing fixed-size matrix of this module.
//
// A Matrix[T, R, C] is an engine matrix (matrix.Mat) over a
// storage.GenericArrayStorage: its R and C size parameters may be spelled
// with any descriptor family (dim.U3, unsigned.U3, unsigned.Const3) and the
// memory layout is the same for all of them, packed column-major.
//
// Conv changes the spelling of both axes in place, checked at compile time;
// FromMatrix and IntoDense move buffers between this package and the engine's
// runtime-sized Dense without copying. Runtime shape checks happen only where
// sizes arrive at run time (FromRows, FromMatrix).
package generic
