// SPDX-License-Identifier: MIT

package dim

import "errors"

// ErrUnsupported is returned when a length has no named dimension
// (negative, or above MaxValue).
var ErrUnsupported = errors.New("dim: unsupported dimension")
