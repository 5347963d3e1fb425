// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"

	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/katalvlaran/lvgroup/perm"
	"github.com/spf13/cobra"
)

type s3Row struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	LaTeX   string `json:"latex" yaml:"latex"`
	Perm    []int  `json:"perm" yaml:"perm"`
	Sign    int    `json:"sign" yaml:"sign"`
	Order   int    `json:"order" yaml:"order"`
	Inverse string `json:"inverse" yaml:"inverse"`
}

type s3View struct {
	Elements []s3Row    `json:"elements" yaml:"elements"`
	Cayley   [][]string `json:"cayley" yaml:"cayley"`
}

func (v s3View) Tables() []render.Table {
	elems := render.Table{
		Title:  "S₃",
		Header: []string{"ID", "Cycle", "Image of (1,2,3)", "Sign", "Order", "Inverse"},
	}
	for _, e := range v.Elements {
		img := make([]int, len(e.Perm))
		for i, p := range e.Perm {
			img[i] = p + 1
		}
		elems.Rows = append(elems.Rows, []string{
			e.ID, e.Label, "(" + joinInts(img, ",") + ")",
			strconv.Itoa(e.Sign), strconv.Itoa(e.Order), e.Inverse,
		})
	}

	cayley := render.Table{Title: "Cayley table (row ∘ column)", Header: []string{"∘"}}
	for _, e := range v.Elements {
		cayley.Header = append(cayley.Header, e.Label)
	}
	for i, row := range v.Cayley {
		cayley.Rows = append(cayley.Rows, append([]string{v.Elements[i].Label}, row...))
	}

	return []render.Table{elems, cayley}
}

func newS3Cmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "s3",
		Short: "List the permutations of S₃ with their Cayley table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.write(cmd, buildS3View())
		},
	}
}

func buildS3View() s3View {
	els := perm.S3()
	v := s3View{}
	for _, e := range els {
		inv, _ := perm.Lookup(perm.Inverse(e.Perm))
		v.Elements = append(v.Elements, s3Row{
			ID:      e.ID,
			Label:   e.Label,
			LaTeX:   e.LaTeX,
			Perm:    e.Perm[:],
			Sign:    e.Perm.Sign(),
			Order:   e.Perm.Order(),
			Inverse: inv.Label,
		})
	}
	for _, a := range els {
		row := make([]string, len(els))
		for j, b := range els {
			// a ∘ b: b acts first, (a∘b)[i] = a[b[i]].
			c, _ := perm.Lookup(perm.Compose(a.Perm, b.Perm))
			row[j] = c.Label
		}
		v.Cayley = append(v.Cayley, row)
	}

	return v
}
