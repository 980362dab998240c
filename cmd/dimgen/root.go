// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/genstore/internal/gen"
)

// flags shared by every subcommand.
type rootFlags struct {
	verbose  bool
	maxDim   int
	maxArity int
	module   string
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "dimgen",
		Short:         "Generate size descriptor files",
		Long:          `dimgen renders the named dimensions, the binary spellings and the exact-arity correspondences.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.IntVar(&f.maxDim, "max-dim", gen.DefaultMaxDim, "Largest named dimension (overrides DIMGEN_MAX_DIM)")
	pf.IntVar(&f.maxArity, "max-arity", gen.DefaultMaxArity, "Largest array arity (overrides DIMGEN_MAX_ARITY)")
	pf.StringVar(&f.module, "module", gen.DefaultModule, "Module path used in imports (overrides DIMGEN_MODULE)")

	root.AddCommand(
		newRenderCmd(f, "unsigned", "Generate unsigned/consts_gen.go", gen.Unsigned),
		newRenderCmd(f, "dims", "Generate dim/dims_gen.go", gen.Dims),
		newRenderCmd(f, "corr", "Generate conv/corr_gen.go", gen.Corr),
		newAllCmd(f),
	)

	return root
}

// config merges the environment with explicitly set flags. An out-of-range
// environment may still be repaired by the flags, so only parse failures
// are reported before the overrides apply.
func (f *rootFlags) config(cmd *cobra.Command) (gen.Config, error) {
	cfg, err := gen.LoadConfig()
	if err != nil && !errors.Is(err, gen.ErrBadBound) && !errors.Is(err, gen.ErrEmptyModule) {
		return gen.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-dim") {
		cfg.MaxDim = f.maxDim
	}
	if flags.Changed("max-arity") {
		cfg.MaxArity = f.maxArity
	}
	if flags.Changed("module") {
		cfg.Module = f.module
	}
	slog.Debug("config", "max_dim", cfg.MaxDim, "max_arity", cfg.MaxArity, "module", cfg.Module)

	return cfg, cfg.Validate()
}

// writeOutput writes src to path, or to stdout when path is "-".
func writeOutput(cmd *cobra.Command, path string, src []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return err
	}
	slog.Info("wrote", "file", path, "bytes", len(src))

	return nil
}
