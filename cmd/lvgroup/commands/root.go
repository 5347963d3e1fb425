// SPDX-License-Identifier: MIT

// Package commands builds the lvgroup cobra command tree.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/internal/config"
	"github.com/katalvlaran/lvgroup/internal/logger"
	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/spf13/cobra"
)

// state is shared by every subcommand of one root. It is filled in by the
// root's PersistentPreRunE before any RunE runs.
type state struct {
	output     string
	configPath string
	verbosity  int
	logJSON    bool

	cfg    *config.Config
	format render.Format
}

// NewRootCmd returns a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "lvgroup",
		Short: "Cubic roots, Lagrange resolvents and small finite groups",
		Long: `lvgroup - numerical and group-theoretic companion to Galois theory notes.

Available commands:
  solve           - Durand–Kerner roots of x³ + a·x² + b·x + c and their resolvents
  s3              - the six permutations of S₃
  dihedral        - elements of D_n, orbit and stabilizer of a vertex
  classeq         - conjugacy classes and the class equation of S₃ or D_n
  correspondence  - subgroups of D_n above N matched with subgroups of D_n/N
  sylow           - admissible Sylow counts n_p for a group order
  version         - build version

Examples:
  lvgroup solve --a 0 --b 1 --c 1 --perm 123
  lvgroup dihedral --n 6 --vertex 2 -o json
  lvgroup classeq --group D4
  lvgroup correspondence --n 4 --normal r2
  lvgroup sylow --order 12 --p 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.prepare(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&st.output, "output", "o", "", "output format: table, json or yaml (default from config)")
	flags.StringVar(&st.configPath, "config", "", "path to a TOML config file (default: nearest lvgroup.toml)")
	flags.CountVarP(&st.verbosity, "verbose", "v", "log verbosity (-v info, -vv debug)")
	flags.BoolVar(&st.logJSON, "log-json", false, "emit logs as JSON on stderr")

	root.AddCommand(
		newSolveCmd(st),
		newS3Cmd(st),
		newDihedralCmd(st),
		newClassEqCmd(st),
		newCorrespondenceCmd(st),
		newSylowCmd(st),
		newVersionCmd(st),
	)

	return root
}

// prepare initializes logging, loads configuration and resolves the output format.
func (st *state) prepare(cmd *cobra.Command) error {
	if err := logger.Initialize(st.logJSON, st.verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	var (
		cfg *config.Config
		err error
	)
	if st.configPath != "" {
		cfg, err = config.LoadFromFile(st.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	st.cfg = cfg

	format := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		format = st.output
	}
	st.format, err = render.ParseFormat(format)
	if err != nil {
		return err
	}

	logger.Logger.Debugw("command prepared",
		"command", cmd.Name(),
		"format", st.format,
		"config", st.configPath,
	)
	return nil
}

func (st *state) write(cmd *cobra.Command, v render.View) error {
	return render.Write(cmd.OutOrStdout(), st.format, v)
}
