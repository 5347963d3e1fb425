// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"

	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/katalvlaran/lvgroup/sylow"
	"github.com/spf13/cobra"
)

type sylowView struct {
	Order         int   `json:"order" yaml:"order"`
	P             int   `json:"p" yaml:"p"`
	K             int   `json:"k" yaml:"k"`
	M             int   `json:"m" yaml:"m"`
	SubgroupOrder int   `json:"subgroup_order" yaml:"subgroup_order"`
	Divisors      []int `json:"divisors_of_m" yaml:"divisors_of_m"`
	Candidates    []int `json:"candidates" yaml:"candidates"`
	Normal        bool  `json:"normal" yaml:"normal"`
}

func (v sylowView) Tables() []render.Table {
	p := strconv.Itoa(v.P)
	return []render.Table{{
		Title: "Sylow " + p + "-subgroups of a group of order " + strconv.Itoa(v.Order),
		Rows: [][]string{
			{"|G| = pᵏ·m", strconv.Itoa(v.Order) + " = " + p + "^" + strconv.Itoa(v.K) + " · " + strconv.Itoa(v.M)},
			{"|P|", strconv.Itoa(v.SubgroupOrder)},
			{"n_p | m", "{" + joinInts(v.Divisors, ", ") + "}"},
			{"n_p ≡ 1 (mod " + p + ")", "{" + joinInts(v.Candidates, ", ") + "}"},
			{"P normal (n_p = 1 forced)", strconv.FormatBool(v.Normal)},
		},
	}}
}

func newSylowCmd(st *state) *cobra.Command {
	var order, p int

	cmd := &cobra.Command{
		Use:     "sylow",
		Short:   "List the admissible numbers of Sylow p-subgroups",
		Example: `  lvgroup sylow --order 12 --p 3   # n_3 ∈ {1, 4}`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := sylow.Analyze(order, p)
			if err != nil {
				return err
			}

			return st.write(cmd, sylowView{
				Order:         a.Order,
				P:             a.P,
				K:             a.K,
				M:             a.M,
				SubgroupOrder: a.SubgroupOrder(),
				Divisors:      a.Divisors,
				Candidates:    a.Candidates,
				Normal:        a.Normal(),
			})
		},
	}
	cmd.Flags().IntVar(&order, "order", 12, "group order |G|")
	cmd.Flags().IntVar(&p, "p", 3, "prime p dividing |G|")

	return cmd
}
