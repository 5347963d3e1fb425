// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/cplx"
	"github.com/katalvlaran/lvgroup/cubic"
	"github.com/katalvlaran/lvgroup/internal/logger"
	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/katalvlaran/lvgroup/perm"
	"github.com/katalvlaran/lvgroup/resolvent"
	"github.com/spf13/cobra"
)

// ErrNonFiniteRoots is returned when the iteration overflows, which happens
// for finite but huge coefficients.
var ErrNonFiniteRoots = errors.New("commands: solver produced non-finite roots")

// distinctEps groups resolvent magnitudes that agree to ~9 significant digits.
const distinctEps = 1e-9

type solveFlags struct {
	a, b, c    float64
	permID     string
	iterations int
	tolerance  float64
	update     string
}

type resolventRow struct {
	ID        string      `json:"id" yaml:"id"`
	Label     string      `json:"label" yaml:"label"`
	Value     complexView `json:"value" yaml:"value"`
	Magnitude float64     `json:"magnitude" yaml:"magnitude"`
}

type solveView struct {
	Coefficients cubic.Coefficients `json:"coefficients" yaml:"coefficients"`
	Update       string             `json:"update" yaml:"update"`
	Roots        []complexView      `json:"roots" yaml:"roots"`
	Residuals    []float64          `json:"residuals" yaml:"residuals"`
	Selected     resolventRow       `json:"selected" yaml:"selected"`
	Resolvents   []resolventRow     `json:"resolvents" yaml:"resolvents"`
	Distinct     []float64          `json:"distinct_magnitudes" yaml:"distinct_magnitudes"`
}

func (v solveView) Tables() []render.Table {
	roots := render.Table{
		Title:  "Roots of x³ + (" + ftoa(v.Coefficients.A) + ")x² + (" + ftoa(v.Coefficients.B) + ")x + (" + ftoa(v.Coefficients.C) + ")",
		Header: []string{"#", "Re", "Im", "|f(z)|"},
	}
	for i, r := range v.Roots {
		roots.Rows = append(roots.Rows, []string{strconv.Itoa(i + 1), ftoa(r.Re), ftoa(r.Im), ftoa(v.Residuals[i])})
	}

	res := render.Table{
		Title:  "Resolvent (x₁ + ωx₂ + ω²x₃)³",
		Header: []string{"σ", "y", "|y|", ""},
	}
	for _, r := range v.Resolvents {
		mark := ""
		if r.ID == v.Selected.ID {
			mark = "◀"
		}
		res.Rows = append(res.Rows, []string{r.Label, r.Value.Text, ftoa(r.Magnitude), mark})
	}

	distinct := render.Table{Title: "Distinct magnitudes", Rows: [][]string{}}
	for _, m := range v.Distinct {
		distinct.Rows = append(distinct.Rows, []string{ftoa(m)})
	}

	return []render.Table{roots, res, distinct}
}

func newSolveCmd(st *state) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the roots of a monic cubic and evaluate the Lagrange resolvent",
		Long: `Solve x³ + a·x² + b·x + c = 0 with the Durand–Kerner iteration, then
evaluate (x₁ + ω·x₂ + ω²·x₃)³ for every permutation of the roots.

Solver settings come from lvgroup.toml ([solver]) unless overridden here.`,
		Example: `  lvgroup solve                       # x³ − 1
  lvgroup solve --a -6 --b 11 --c -6 --perm 12
  lvgroup solve --c 1 --b 1 --update simultaneous -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *st.cfg
			if cmd.Flags().Changed("iterations") {
				cfg.Solver.Iterations = f.iterations
			}
			if cmd.Flags().Changed("tolerance") {
				cfg.Solver.Tolerance = f.tolerance
			}
			if cmd.Flags().Changed("update") {
				cfg.Solver.Update = f.update
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			sel, err := perm.ByID(f.permID)
			if err != nil {
				return err
			}

			coeffs := cubic.Coefficients{A: f.a, B: f.b, C: f.c}
			roots, err := cubic.Solve(coeffs, cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			for _, r := range roots {
				if !cplx.IsFinite(r) {
					return errors.Wrapf(ErrNonFiniteRoots, "coefficients %+v (try smaller magnitudes)", coeffs)
				}
			}
			logger.Logger.Debugw("cubic solved",
				"coefficients", coeffs,
				"iterations", cfg.Solver.Iterations,
				"update", cfg.Solver.Update,
				"max_residual", cubic.MaxResidual(coeffs, roots),
			)

			return st.write(cmd, buildSolveView(coeffs, cfg.Solver.Update, roots, sel))
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.a, "a", 0, "coefficient of x²")
	flags.Float64Var(&f.b, "b", 0, "coefficient of x")
	flags.Float64Var(&f.c, "c", -1, "constant term")
	flags.StringVar(&f.permID, "perm", "e", "S₃ element for the highlighted resolvent: e, 12, 13, 23, 123, 132")
	flags.IntVar(&f.iterations, "iterations", cubic.DefaultIterations, "Durand–Kerner iterations")
	flags.Float64Var(&f.tolerance, "tolerance", 0, "stop early once every correction is at most this (0 = never)")
	flags.StringVar(&f.update, "update", cubic.Sequential.String(), "update mode: sequential or simultaneous")

	return cmd
}

func buildSolveView(coeffs cubic.Coefficients, update string, roots cubic.Roots, sel perm.Element) solveView {
	mode, _ := cubic.ParseUpdateMode(update)
	res := cubic.Residuals(coeffs, roots)

	v := solveView{
		Coefficients: coeffs,
		Update:       mode.String(),
		Residuals:    res[:],
	}
	for _, r := range roots {
		v.Roots = append(v.Roots, newComplexView(r))
	}

	entries := resolvent.Table(roots)
	for _, e := range entries {
		row := resolventRow{
			ID:        e.Element.ID,
			Label:     e.Element.Label,
			Value:     newComplexView(e.Value),
			Magnitude: e.Magnitude,
		}
		v.Resolvents = append(v.Resolvents, row)
		if e.Element.ID == sel.ID {
			v.Selected = row
		}
	}
	v.Distinct = resolvent.Distinct(entries, distinctEps)

	return v
}
