// SPDX-License-Identifier: MIT

package gen

import "text/template"

const header = "// Code generated by dimgen. DO NOT EDIT.\n"

var unsignedTmpl = template.Must(template.New("unsigned").Funcs(funcs).Parse(header + `
package unsigned

import "{{.Module}}/internal/seal"

// MaxConst is the largest number with a predeclared spelling.
const MaxConst = {{.Max}}

// Canonical binary spellings.
type (
{{- range .Numbers}}
	U{{.}} = {{binary .}}
{{- end}}
)
{{range .Numbers}}
// Const{{.}} is the literal spelling of {{.}}.
type Const{{.}} struct{}

// Num returns {{.}}.
func (Const{{.}}) Num() int { return {{.}} }

// ArrLen returns U{{.}}.
func (Const{{.}}) ArrLen() U{{.}} { return U{{.}}{} }

// Sealed implements Unsigned.
func (Const{{.}}) Sealed() seal.Seal { return seal.Seal{} }
{{end}}`))

var dimsTmpl = template.Must(template.New("dims").Funcs(funcs).Parse(header + `
package dim

import (
	"{{.Module}}/internal/seal"
	"{{.Module}}/unsigned"
)

// MaxValue is the largest named dimension.
const MaxValue = {{.Max}}
{{range .Numbers}}
// U{{.}} is the named dimension of length {{.}}.
type U{{.}} struct{}

// Value returns {{.}}.
func (U{{.}}) Value() int { return {{.}} }

// Num returns {{.}}.
func (U{{.}}) Num() int { return {{.}} }

// ArrLen returns unsigned.U{{.}}.
func (U{{.}}) ArrLen() unsigned.U{{.}} { return unsigned.U{{.}}{} }

// Sealed implements the descriptor seal.
func (U{{.}}) Sealed() seal.Seal { return seal.Seal{} }
{{end}}
// named indexes every named dimension by its value.
var named = [MaxValue + 1]Dim{
{{- range .Numbers}}
	U{{.}}{},
{{- end}}
}
`))

var corrTmpl = template.Must(template.New("corr").Funcs(funcs).Parse(header + `
package conv

import (
	"{{.Module}}/garray"
	"{{.Module}}/unsigned"
)

// MaxArity is the largest array arity with a generated correspondence.
const MaxArity = {{.Max}}
{{range .Numbers}}
// ArrayToGeneric{{.}} moves a [{{.}}]E into a container sized by D.
func ArrayToGeneric{{.}}[D Conv[unsigned.U{{.}}], E any](a [{{.}}]E) garray.Array[E, D] {
	return garray.MustFromSlice[D](a[:])
}

// GenericToArray{{.}} moves a container sized by D back into a [{{.}}]E.
func GenericToArray{{.}}[D Conv[unsigned.U{{.}}], E any](g garray.Array[E, D]) [{{.}}]E {
	return [{{.}}]E(g.Slice())
}
{{end}}`))
