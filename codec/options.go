// SPDX-License-Identifier: MIT

// Package codec: functional configuration for the wire encodings.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package codec

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFormat is the encoding used when no WithFormat is given.
	DefaultFormat = JSON

	// DefaultIndent disables pretty-printing.
	DefaultIndent = 0

	// DefaultLayout writes elements in storage (column-major) order.
	DefaultLayout = LayoutColMajor
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFormatInvalid = "codec: WithFormat: unknown format"
	panicIndentInvalid = "codec: WithIndent: width must be in [0, 16]"
)

// maxIndent bounds WithIndent.
const maxIndent = 16

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	format Format // DefaultFormat
	indent int    // DefaultIndent; 0 means compact
	layout string // DefaultLayout
}

// WithFormat selects the wire encoding.
//
// Errors:
//   - Panics when f is not one of JSON, YAML, CBOR.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(fmt.Sprintf("%s: %d", panicFormatInvalid, f))
	}

	return func(o *Options) { o.format = f }
}

// WithIndent pretty-prints JSON and sets the YAML indentation width.
// CBOR is binary and ignores it.
//
// Errors:
//   - Panics when width is negative or above 16.
func WithIndent(width int) Option {
	if width < 0 || width > maxIndent {
		panic(panicIndentInvalid)
	}

	return func(o *Options) { o.indent = width }
}

// WithRowMajor writes the data array row by row, the way matrices are
// written on paper. Decoding honours the layout recorded in the document
// whatever this option says.
func WithRowMajor() Option {
	return func(o *Options) { o.layout = LayoutRowMajor }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{format: DefaultFormat, indent: DefaultIndent, layout: DefaultLayout}
}

// gatherOptions applies user setters over the defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
