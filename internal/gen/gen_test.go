// SPDX-License-Identifier: MIT
package gen_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/genstore/internal/gen"
	"github.com/stretchr/testify/require"
)

// parse fails the test unless src is a valid Go file and returns its declarations by name.
func parse(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		}
	}

	return names
}

func TestBinarySpelling(t *testing.T) {
	require.Equal(t, "UTerm", gen.BinarySpelling(0))
	require.Equal(t, "UInt[U0, B1]", gen.BinarySpelling(1))
	require.Equal(t, "UInt[U3, B0]", gen.BinarySpelling(6))
	require.Equal(t, "UInt[U64, B1]", gen.BinarySpelling(129))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, gen.DefaultConfig().Validate())

	cfg := gen.DefaultConfig()
	cfg.MaxArity = cfg.MaxDim + 1
	require.ErrorIs(t, cfg.Validate(), gen.ErrBadBound)

	cfg = gen.DefaultConfig()
	cfg.MaxDim = -1
	require.ErrorIs(t, cfg.Validate(), gen.ErrBadBound)

	cfg = gen.DefaultConfig()
	cfg.Module = ""
	require.ErrorIs(t, cfg.Validate(), gen.ErrEmptyModule)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DIMGEN_MAX_DIM", "16")
	t.Setenv("DIMGEN_MAX_ARITY", "4")
	t.Setenv("DIMGEN_MODULE", "example.com/m")

	cfg, err := gen.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, gen.Config{MaxDim: 16, MaxArity: 4, Module: "example.com/m"}, cfg)

	t.Setenv("DIMGEN_MAX_ARITY", "17")
	_, err = gen.LoadConfig()
	require.ErrorIs(t, err, gen.ErrBadBound)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := gen.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, gen.DefaultConfig(), cfg)
}

func TestRenderSmall(t *testing.T) {
	cfg := gen.Config{MaxDim: 5, MaxArity: 2, Module: "example.com/m"}

	u, err := gen.Unsigned(cfg)
	require.NoError(t, err)
	names := parse(t, u)
	for _, n := range []string{"MaxConst", "U0", "U5", "Const0", "Const5"} {
		require.True(t, names[n], n)
	}
	require.False(t, names["U6"])
	require.Contains(t, string(u), "U5 = UInt[U2, B1]")

	d, err := gen.Dims(cfg)
	require.NoError(t, err)
	names = parse(t, d)
	require.True(t, names["U5"])
	require.True(t, names["named"])
	require.Contains(t, string(d), `"example.com/m/unsigned"`)

	c, err := gen.Corr(cfg)
	require.NoError(t, err)
	names = parse(t, c)
	require.True(t, names["ArrayToGeneric2"])
	require.True(t, names["GenericToArray0"])
	require.False(t, names["ArrayToGeneric3"])
}

// TestCommittedFilesUpToDate regenerates the committed files with the
// default configuration and compares them byte for byte.
func TestCommittedFilesUpToDate(t *testing.T) {
	cfg := gen.DefaultConfig()
	for _, tc := range []struct {
		path   string
		render func(gen.Config) ([]byte, error)
	}{
		{"unsigned/consts_gen.go", gen.Unsigned},
		{"dim/dims_gen.go", gen.Dims},
		{"conv/corr_gen.go", gen.Corr},
	} {
		t.Run(tc.path, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("..", "..", tc.path))
			require.NoError(t, err)
			got, err := tc.render(cfg)
			require.NoError(t, err)
			if !bytes.Equal(want, got) {
				t.Errorf("%s is stale; run go generate ./...", tc.path)
			}
		})
	}
}

func TestRenderRejectsBadConfig(t *testing.T) {
	_, err := gen.Dims(gen.Config{MaxDim: 3, MaxArity: 1})
	require.ErrorIs(t, err, gen.ErrEmptyModule)
}
