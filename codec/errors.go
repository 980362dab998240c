// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genstore/storage"
)

var (
	// ErrDimensionMismatch is returned when a decoded document does not have
	// the requested shape. It wraps storage.ErrDimensionMismatch.
	ErrDimensionMismatch = fmt.Errorf("codec: %w", storage.ErrDimensionMismatch)

	// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrUnknownLayout is returned when a document names an unknown layout.
	ErrUnknownLayout = errors.New("codec: unknown layout")

	// ErrDecode wraps failures of the underlying decoder.
	ErrDecode = errors.New("codec: malformed document")
)

// codecErrorf wraps err with an operation tag.
func codecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
