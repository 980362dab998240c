// SPDX-License-Identifier: MIT

// Package codec encodes matrices as self-describing documents and decodes
// them back into fixed-size matrices.
//
// A document carries its own shape and layout:
//
//	{"rows": 2, "cols": 3, "layout": "col-major", "data": [1, 4, 2, 5, 3, 6]}
//
// Decoding is where sizes arrive at run time, so it is where a shape
// mismatch is reported (ErrDimensionMismatch) instead of failing to compile.
//
// Supported encodings: JSON (github.com/goccy/go-json), YAML
// (gopkg.in/yaml.v3) and CBOR (github.com/fxamacker/cbor/v2).
package codec

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genstore/conv"
	"github.com/katalvlaran/genstore/generic"
	"github.com/katalvlaran/genstore/matrix"
	"github.com/katalvlaran/genstore/storage"
)

// Format is a wire encoding.
type Format int

// Supported formats.
const (
	JSON Format = iota
	YAML
	CBOR
)

// Layout names recorded in documents.
const (
	LayoutColMajor = "col-major"
	LayoutRowMajor = "row-major"
)

const (
	opMarshal   = "Marshal"
	opUnmarshal = "Unmarshal"
)

var formatNames = [...]string{JSON: "json", YAML: "yaml", CBOR: "cbor"}

// String returns the lower-case name of f.
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

func (f Format) valid() bool { return f >= JSON && f <= CBOR }

// ParseFormat maps "json", "yaml"/"yml" and "cbor" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// document is the wire shape shared by every format.
type document[T matrix.Scalar] struct {
	Rows   int    `json:"rows" yaml:"rows" cbor:"rows"`
	Cols   int    `json:"cols" yaml:"cols" cbor:"cols"`
	Layout string `json:"layout" yaml:"layout" cbor:"layout"`
	Data   []T    `json:"data" yaml:"data" cbor:"data"`
}

// Marshal encodes m.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - encoder failures, wrapped with the "Marshal" tag.
//
// Complexity:
//   - Time O(r*c) plus encoding.
func Marshal[T matrix.Scalar](m matrix.Matrix[T], opts ...Option) ([]byte, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, codecErrorf(opMarshal, err)
	}
	o := gatherOptions(opts...)

	r, c := m.Rows(), m.Cols()
	doc := document[T]{Rows: r, Cols: c, Layout: o.layout, Data: make([]T, 0, r*c)}
	var (
		i, j int
		v    T
		err  error
	)
	if o.layout == LayoutRowMajor {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, codecErrorf(opMarshal, err)
				}
				doc.Data = append(doc.Data, v)
			}
		}
	} else {
		for j = 0; j < c; j++ {
			for i = 0; i < r; i++ {
				if v, err = m.At(i, j); err != nil {
					return nil, codecErrorf(opMarshal, err)
				}
				doc.Data = append(doc.Data, v)
			}
		}
	}

	out, err := encode(doc, o)
	if err != nil {
		return nil, codecErrorf(opMarshal, err)
	}

	return out, nil
}

// encode runs the selected encoder.
func encode(doc any, o Options) ([]byte, error) {
	switch o.format {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		if o.indent > 0 {
			enc.SetIndent(o.indent)
		}
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case CBOR:
		return cbor.Marshal(doc)
	default:
		if o.indent > 0 {
			return json.MarshalIndent(doc, "", strings.Repeat(" ", o.indent))
		}

		return json.Marshal(doc)
	}
}

// decode runs the selected decoder.
func decode(data []byte, doc any, f Format) error {
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, doc)
	case CBOR:
		err = cbor.Unmarshal(data, doc)
	default:
		err = json.Unmarshal(data, doc)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}

	return nil
}

// colMajor decodes data and returns the elements in column-major order.
func colMajor[T matrix.Scalar](data []byte, f Format) (document[T], error) {
	var doc document[T]
	if err := decode(data, &doc, f); err != nil {
		return doc, err
	}
	if doc.Rows < 0 || doc.Cols < 0 || (doc.Rows != 0 && doc.Cols > math.MaxInt/doc.Rows) {
		return doc, fmt.Errorf("invalid shape %dx%d: %w", doc.Rows, doc.Cols, ErrDimensionMismatch)
	}
	if len(doc.Data) != doc.Rows*doc.Cols {
		return doc, fmt.Errorf("%d elements for %dx%d: %w", len(doc.Data), doc.Rows, doc.Cols, ErrDimensionMismatch)
	}
	if doc.Data == nil {
		doc.Data = make([]T, 0)
	}

	switch doc.Layout {
	case LayoutColMajor, "":
	case LayoutRowMajor:
		out := make([]T, len(doc.Data))
		for i := 0; i < doc.Rows; i++ {
			for j := 0; j < doc.Cols; j++ {
				out[i+j*doc.Rows] = doc.Data[i*doc.Cols+j]
			}
		}
		doc.Data, doc.Layout = out, LayoutColMajor
	default:
		return doc, fmt.Errorf("%q: %w", doc.Layout, ErrUnknownLayout)
	}

	return doc, nil
}

// Unmarshal decodes an R×C matrix.
//
// Errors:
//   - ErrDecode for malformed input.
//   - ErrDimensionMismatch when the document is not R×C or its data length
//     disagrees with its shape.
//   - ErrUnknownLayout for an unrecognized layout.
func Unmarshal[R, C conv.Descriptor, T matrix.Scalar](data []byte, opts ...Option) (*generic.Matrix[T, R, C], error) {
	o := gatherOptions(opts...)
	doc, err := colMajor[T](data, o.format)
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}
	if doc.Rows != conv.Num[R]() || doc.Cols != conv.Num[C]() {
		return nil, codecErrorf(opUnmarshal, fmt.Errorf("got %dx%d, want %dx%d: %w",
			doc.Rows, doc.Cols, conv.Num[R](), conv.Num[C](), ErrDimensionMismatch))
	}

	s, err := storage.FromSlice[R, C](doc.Data)
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}
	m, err := matrix.FromData[T](s)
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}

	return m, nil
}

// UnmarshalDense decodes a matrix of any shape into an engine *Dense.
func UnmarshalDense[T matrix.Scalar](data []byte, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	doc, err := colMajor[T](data, o.format)
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}
	d, err := matrix.DenseFromRawParts(doc.Data, doc.Rows, doc.Cols)
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}

	return d, nil
}
