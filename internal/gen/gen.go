// SPDX-License-Identifier: MIT

// Package gen renders the generated descriptor files of this module:
//
//   - dim/dims_gen.go      named dimensions U0 … U<MaxDim>;
//   - unsigned/consts_gen.go binary aliases and literal spellings;
//   - conv/corr_gen.go     exact-arity correspondences for arities 0 … MaxArity.
//
// Rendering is pure: every function returns formatted source and never
// touches the filesystem. cmd/dimgen owns the I/O.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/caarlos0/env/v11"
	"golang.org/x/tools/imports"
)

// Defaults mirror the committed generated files.
const (
	DefaultMaxDim   = 128
	DefaultMaxArity = 32
	DefaultModule   = "github.com/katalvlaran/genstore"
)

// Sentinel errors.
var (
	// ErrBadBound is returned when a bound is negative or the arity bound
	// exceeds the dimension bound (every arity needs a binary alias).
	ErrBadBound = errors.New("gen: invalid bound")

	// ErrEmptyModule is returned when the module path is empty.
	ErrEmptyModule = errors.New("gen: empty module path")
)

// Config drives rendering. Zero values are not valid; use LoadConfig or
// DefaultConfig.
type Config struct {
	MaxDim   int    `env:"DIMGEN_MAX_DIM" envDefault:"128"`
	MaxArity int    `env:"DIMGEN_MAX_ARITY" envDefault:"32"`
	Module   string `env:"DIMGEN_MODULE" envDefault:"github.com/katalvlaran/genstore"`
}

// DefaultConfig returns the configuration used for the committed files.
func DefaultConfig() Config {
	return Config{MaxDim: DefaultMaxDim, MaxArity: DefaultMaxArity, Module: DefaultModule}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("gen: parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the bounds and the module path.
func (c Config) Validate() error {
	if c.MaxDim < 0 || c.MaxArity < 0 {
		return fmt.Errorf("max dim %d, max arity %d: %w", c.MaxDim, c.MaxArity, ErrBadBound)
	}
	if c.MaxArity > c.MaxDim {
		return fmt.Errorf("max arity %d exceeds max dim %d: %w", c.MaxArity, c.MaxDim, ErrBadBound)
	}
	if c.Module == "" {
		return ErrEmptyModule
	}

	return nil
}

// BinarySpelling returns the right-hand side of the canonical alias for n,
// written in terms of the alias of n/2: UInt[U<n/2>, B<n%2>]. Zero is UTerm.
func BinarySpelling(n int) string {
	if n == 0 {
		return "UTerm"
	}

	return fmt.Sprintf("UInt[U%d, B%d]", n/2, n%2)
}

// Unsigned renders unsigned/consts_gen.go.
func Unsigned(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return render("consts_gen.go", unsignedTmpl, cfg, cfg.MaxDim)
}

// Dims renders dim/dims_gen.go.
func Dims(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return render("dims_gen.go", dimsTmpl, cfg, cfg.MaxDim)
}

// Corr renders conv/corr_gen.go.
func Corr(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return render("corr_gen.go", corrTmpl, cfg, cfg.MaxArity)
}

type tmplData struct {
	Module  string
	Max     int
	Numbers []int
}

var funcs = template.FuncMap{"binary": BinarySpelling}

func render(name string, tmpl *template.Template, cfg Config, maxN int) ([]byte, error) {
	data := tmplData{Module: cfg.Module, Max: maxN, Numbers: make([]int, maxN+1)}
	for i := range data.Numbers {
		data.Numbers[i] = i
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: execute %s: %w", name, err)
	}

	out, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gen: format %s: %w", name, err)
	}

	return out, nil
}
