// SPDX-License-Identifier: MIT

// Package seal closes the set of size descriptors.
//
// Descriptor interfaces require a Sealed() seal.Seal method. Because this
// package is internal, types declared outside the module cannot spell the
// return type and therefore cannot become descriptors.
package seal

// Seal is the zero-size token returned by every descriptor's Sealed method.
type Seal struct{}
