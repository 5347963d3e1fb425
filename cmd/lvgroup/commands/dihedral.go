// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgroup/dihedral"
	"github.com/katalvlaran/lvgroup/internal/logger"
	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/spf13/cobra"
)

type dihedralRow struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	LaTeX       string `json:"latex" yaml:"latex"`
	Permutation []int  `json:"permutation" yaml:"permutation"`
	Order       int    `json:"order" yaml:"order"`
	Fixes       bool   `json:"fixes_vertex" yaml:"fixes_vertex"`
}

type vertexView struct {
	Label int     `json:"label" yaml:"label"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

type dihedralView struct {
	N          int           `json:"n" yaml:"n"`
	GroupOrder int           `json:"group_order" yaml:"group_order"`
	Vertex     int           `json:"vertex" yaml:"vertex"`
	Orbit      []int         `json:"orbit" yaml:"orbit"`
	Stabilizer []string      `json:"stabilizer" yaml:"stabilizer"`
	Holds      bool          `json:"orbit_stabilizer_holds" yaml:"orbit_stabilizer_holds"`
	Elements   []dihedralRow `json:"elements" yaml:"elements"`
	Vertices   []vertexView  `json:"vertices" yaml:"vertices"`
}

func (v dihedralView) Tables() []render.Table {
	elems := render.Table{
		Title:  "D" + strconv.Itoa(v.N) + " acting on the vertices of a regular " + strconv.Itoa(v.N) + "-gon",
		Header: []string{"ID", "Name", "LaTeX", "Vertex map", "Order", "Fixes v" + strconv.Itoa(v.Vertex)},
	}
	for _, e := range v.Elements {
		fixes := ""
		if e.Fixes {
			fixes = "✓"
		}
		elems.Rows = append(elems.Rows, []string{
			e.ID, e.Name, e.LaTeX, "[" + joinInts(e.Permutation, " ") + "]", strconv.Itoa(e.Order), fixes,
		})
	}

	summary := render.Table{
		Title: "Orbit–stabilizer",
		Rows: [][]string{
			{"|G|", strconv.Itoa(v.GroupOrder)},
			{"Orb(" + strconv.Itoa(v.Vertex) + ")", "{" + joinInts(v.Orbit, ", ") + "}"},
			{"Stab(" + strconv.Itoa(v.Vertex) + ")", "{" + strings.Join(v.Stabilizer, ", ") + "}"},
			{"|Orb|·|Stab| = |G|", strconv.FormatBool(v.Holds)},
		},
	}

	return []render.Table{elems, summary}
}

func newDihedralCmd(st *state) *cobra.Command {
	var (
		n      int
		vertex int
		radius float64
	)

	cmd := &cobra.Command{
		Use:   "dihedral",
		Short: "List D_n and check orbit–stabilizer for one vertex",
		Example: `  lvgroup dihedral --n 4
  lvgroup dihedral --n 6 --vertex 2 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				n = st.cfg.Dihedral.N
			}
			if !cmd.Flags().Changed("radius") {
				radius = st.cfg.Dihedral.Radius
			}

			view, err := buildDihedralView(n, vertex, radius)
			if err != nil {
				return err
			}
			logger.Logger.Debugw("dihedral group generated", "n", n, "vertex", vertex, "order", view.GroupOrder)

			return st.write(cmd, view)
		},
	}

	cmd.Flags().IntVar(&n, "n", 4, "number of polygon vertices (≥ 3)")
	cmd.Flags().IntVar(&vertex, "vertex", 0, "vertex whose orbit and stabilizer are reported (0-based)")
	cmd.Flags().Float64Var(&radius, "radius", 80, "circumradius for vertex coordinates")

	return cmd
}

func buildDihedralView(n, vertex int, radius float64) (dihedralView, error) {
	report, err := dihedral.OrbitStabilizer(n, vertex)
	if err != nil {
		return dihedralView{}, err
	}
	points, err := dihedral.Vertices(n, radius)
	if err != nil {
		return dihedralView{}, err
	}
	els, err := dihedral.Generate(n)
	if err != nil {
		return dihedralView{}, err
	}

	v := dihedralView{
		N:          n,
		GroupOrder: report.GroupOrder,
		Vertex:     vertex,
		Orbit:      report.Orbit,
		Holds:      report.Holds(),
	}
	for _, s := range report.Stabilizer {
		v.Stabilizer = append(v.Stabilizer, s.LaTeX())
	}
	for _, e := range els {
		v.Elements = append(v.Elements, dihedralRow{
			ID:          e.ID(),
			Name:        e.Name(),
			LaTeX:       e.LaTeX(),
			Permutation: e.Permutation(),
			Order:       dihedral.Order(e),
			Fixes:       e.Act(vertex) == vertex,
		})
	}
	for _, p := range points {
		v.Vertices = append(v.Vertices, vertexView{Label: p.Label, X: p.X, Y: p.Y})
	}

	return v, nil
}
