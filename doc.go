// Package genstore lets fixed-size matrices be declared with more than one
// compile-time size spelling while keeping one memory layout.
//
// 🚀 What is genstore?
//
//	A generic Go library that brings together:
//		• Size descriptors: named dimensions (dim.U3) and binary numerals
//		  (unsigned.U3, unsigned.Const3) for the same number
//		• Bridges: every descriptor yields its array length and its named
//		  dimension (conv.Conv)
//		• Exact-arity correspondences: [N]E <-> garray.Array[E, D] (conv)
//		• Compatibility: zero-copy retagging between spellings of one size
//		• Storage: column-major GenericArrayStorage fulfilling the engine
//		  storage contract (storage)
//		• Façade: generic.Matrix binds the engine matrix to that storage
//		• Engine: dense matrices, add/mul/transpose, LU, det and inverse (matrix)
//		• Codec: JSON, YAML and CBOR documents for fixed-size matrices (codec)
//
// ✨ Guarantees
//
//   - Same layout regardless of spelling: packed column-major, strides (1, R)
//   - Spelling conversions never copy and compile only for equal sizes
//   - Runtime-sized input is checked once, at the boundary
//
// Layout:
//
//	unsigned/        binary numerals and canonical aliases
//	dim/             named dimensions 0..128
//	conv/            Conv, Corr (ArrayToGenericN/GenericToArrayN), Fwd/Bwd
//	garray/          fixed-length array views with chunk/flatten
//	matrix/          engine: storage contract, Dense, kernels, LU
//	storage/         GenericArrayStorage
//	generic/         Matrix façade and constructors
//	codec/           document encoding
//	cmd/dimgen       generator for the *_gen.go files
//
// Quick example:
//
//	a, _ := generic.FromRows[dim.U2, dim.U2]([][]float64{{1, 3}, {-4, 4}})
//	b := generic.Conv[unsigned.U2, unsigned.Const2](a) // same buffer
//	det, _ := matrix.Determinant[float64](b)           // 16
//
//	go get github.com/katalvlaran/genstore
package genstore
