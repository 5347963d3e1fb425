// SPDX-License-Identifier: MIT

// Command lvgroup prints cubic roots, Lagrange resolvents and small-group
// tables (S₃, D_n, class equations, Sylow counts) in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvgroup/cmd/lvgroup/commands"
	"github.com/katalvlaran/lvgroup/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
