// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/genstore/internal/gen"
)

type renderFunc func(gen.Config) ([]byte, error)

// newRenderCmd builds a subcommand that renders one file.
func newRenderCmd(f *rootFlags, name, short string, render renderFunc) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			src, err := render(cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			return writeOutput(cmd, out, src)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", `Output file ("-" for stdout)`)

	return cmd
}

// target is one generated file, relative to the module root.
type target struct {
	path   string
	render renderFunc
}

var targets = []target{
	{filepath.Join("unsigned", "consts_gen.go"), gen.Unsigned},
	{filepath.Join("dim", "dims_gen.go"), gen.Dims},
	{filepath.Join("conv", "corr_gen.go"), gen.Corr},
}

// newAllCmd builds the subcommand that regenerates every file in place.
func newAllCmd(f *rootFlags) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Regenerate every descriptor file under the module root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			for _, t := range targets {
				src, err := t.render(cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", t.path, err)
				}
				if err := writeOutput(cmd, filepath.Join(root, t.path), src); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "Module root directory")

	return cmd
}
