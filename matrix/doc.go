// Package matrix is the linear-algebra engine the fixed-size storages of this
// module plug into.
//
// The matrix package provides:
//
//   - Matrix[T], the element-access surface every kernel consumes.
//   - RawStorage / RawStorageMut / Storage, the raw storage contract (pointer,
//     shape, strides, contiguity, ownership transfer) a backing store must
//     satisfy to be wrapped by Mat.
//   - Dense[T], the engine's own owned column-major matrix, also used as the
//     result type of every kernel.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, Equal for any Scalar, and
//     LU, Determinant, Inverse, AllClose for floating-point elements.
//
// Kernels never mutate their operands and take a flat-slice fast path when
// both operands report contiguous column-major storage (strides (1, rows)).
//
// See the examples in this package and in package generic for usage patterns.
package matrix
