// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgroup/correspondence"
	"github.com/katalvlaran/lvgroup/internal/logger"
	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/spf13/cobra"
)

type latticeRow struct {
	Subgroup   string   `json:"subgroup" yaml:"subgroup"`
	LaTeX      string   `json:"latex" yaml:"latex"`
	Order      int      `json:"order" yaml:"order"`
	Image      []string `json:"image" yaml:"image"`
	ImageOrder int      `json:"image_order" yaml:"image_order"`
}

type correspondenceView struct {
	Group         string       `json:"group" yaml:"group"`
	Normal        string       `json:"normal" yaml:"normal"`
	NormalOrder   int          `json:"normal_order" yaml:"normal_order"`
	QuotientOrder int          `json:"quotient_order" yaml:"quotient_order"`
	Cosets        []string     `json:"cosets" yaml:"cosets"`
	Pairs         []latticeRow `json:"pairs" yaml:"pairs"`
	Covers        [][2]int     `json:"covers" yaml:"covers"`
	Holds         bool         `json:"holds" yaml:"holds"`
}

func (v correspondenceView) Tables() []render.Table {
	pairs := render.Table{
		Title:  "Subgroups of " + v.Group + " containing N = " + v.Normal + " ↔ subgroups of " + v.Group + "/N",
		Header: []string{"#", "H", "|H|", "H/N", "|H/N|"},
	}
	for i, p := range v.Pairs {
		pairs.Rows = append(pairs.Rows, []string{
			strconv.Itoa(i), p.Subgroup, strconv.Itoa(p.Order),
			"{" + strings.Join(p.Image, ", ") + "}", strconv.Itoa(p.ImageOrder),
		})
	}

	edges := make([]string, len(v.Covers))
	for i, c := range v.Covers {
		edges[i] = strconv.Itoa(c[0]) + "→" + strconv.Itoa(c[1])
	}
	summary := render.Table{
		Rows: [][]string{
			{"|N|", strconv.Itoa(v.NormalOrder)},
			{"|G/N|", strconv.Itoa(v.QuotientOrder)},
			{"Cosets", strings.Join(v.Cosets, " ")},
			{"Hasse edges", strings.Join(edges, " ")},
			{"|H/N| = |H|/|N|, bijective", strconv.FormatBool(v.Holds)},
		},
	}

	return []render.Table{pairs, summary}
}

func newCorrespondenceCmd(st *state) *cobra.Command {
	var (
		n      int
		normal []string
	)

	cmd := &cobra.Command{
		Use:   "correspondence",
		Short: "Match the subgroups of D_n above N with the subgroups of D_n/N",
		Long: `List every subgroup H of D_n with N ≤ H together with its image H/N in the
quotient D_n/N. N is generated by the --normal element IDs (r<k>, s<k>) and
must be normal; without --normal the center Z(D_n) is used.`,
		Example: `  lvgroup correspondence                    # D₄ over Z(D₄) = ⟨r²⟩
  lvgroup correspondence --n 6 --normal r2
  lvgroup correspondence --n 8 --normal r2,s0 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				n = st.cfg.Dihedral.N
			}

			lat, err := correspondence.Dihedral(n, normal...)
			if err != nil {
				return err
			}
			logger.Logger.Debugw("correspondence lattice built",
				"n", n,
				"normal", lat.Quotient.Normal.Label(),
				"pairs", len(lat.Pairs),
			)

			return st.write(cmd, buildCorrespondenceView(n, lat))
		},
	}

	cmd.Flags().IntVar(&n, "n", 4, "number of polygon vertices (≥ 3)")
	cmd.Flags().StringSliceVar(&normal, "normal", nil, "generators of N as element IDs, e.g. r2 or r2,s0 (default: the center)")

	return cmd
}

func buildCorrespondenceView(n int, lat correspondence.Lattice) correspondenceView {
	q := lat.Quotient
	v := correspondenceView{
		Group:         "D_" + strconv.Itoa(n),
		Normal:        q.Normal.Label(),
		NormalOrder:   q.Normal.Order(),
		QuotientOrder: q.Order(),
		Covers:        lat.Covers,
		Holds:         lat.Holds(),
	}
	for _, c := range q.Cosets {
		v.Cosets = append(v.Cosets, c.Label())
	}
	for _, p := range lat.Pairs {
		row := latticeRow{
			Subgroup:   p.Subgroup.Label(),
			LaTeX:      p.Subgroup.LaTeX(),
			Order:      p.Subgroup.Order(),
			ImageOrder: p.ImageOrder(),
		}
		for _, i := range p.Image {
			row.Image = append(row.Image, q.Cosets[i].Label())
		}
		v.Pairs = append(v.Pairs, row)
	}

	return v
}
