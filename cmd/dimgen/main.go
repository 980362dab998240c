// SPDX-License-Identifier: MIT

// Command dimgen writes the generated descriptor files of this module.
//
//	dimgen unsigned -o consts_gen.go
//	dimgen dims -o dims_gen.go
//	dimgen corr -o corr_gen.go
//	dimgen all --root .
//
// Bounds come from DIMGEN_MAX_DIM, DIMGEN_MAX_ARITY and DIMGEN_MODULE;
// the --max-dim, --max-arity and --module flags override them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dimgen: %v\n", err)
		os.Exit(1)
	}
}
