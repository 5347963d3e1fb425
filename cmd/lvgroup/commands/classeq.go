// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/classeq"
	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/spf13/cobra"
)

// ErrUnknownGroup is returned for a --group value other than S3 or D<n>.
var ErrUnknownGroup = errors.New("commands: unknown group")

type classView struct {
	Representative string   `json:"representative" yaml:"representative"`
	Size           int      `json:"size" yaml:"size"`
	Members        []string `json:"members" yaml:"members"`
}

type classEqView struct {
	Group    string      `json:"group" yaml:"group"`
	Order    int         `json:"order" yaml:"order"`
	Center   []string    `json:"center" yaml:"center"`
	Classes  []classView `json:"classes" yaml:"classes"`
	Equation string      `json:"equation" yaml:"equation"`
}

func (v classEqView) Tables() []render.Table {
	classes := render.Table{
		Title:  "Conjugacy classes of " + v.Group,
		Header: []string{"Representative", "Size", "Members"},
	}
	for _, c := range v.Classes {
		classes.Rows = append(classes.Rows, []string{c.Representative, strconv.Itoa(c.Size), strings.Join(c.Members, ", ")})
	}

	summary := render.Table{
		Rows: [][]string{
			{"Z(G)", "{" + strings.Join(v.Center, ", ") + "}"},
			{"Class equation", v.Equation},
		},
	}

	return []render.Table{classes, summary}
}

func newClassEqCmd(st *state) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "classeq",
		Short: "Compute conjugacy classes, center and the class equation",
		Example: `  lvgroup classeq              # S₃: 6 = 1 + 2 + 3
  lvgroup classeq --group D4   # 8 = 2 + 2 + 2 + 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eq, err := classEquation(group)
			if err != nil {
				return err
			}

			return st.write(cmd, buildClassEqView(eq))
		},
	}
	cmd.Flags().StringVar(&group, "group", "S3", "S3 or D<n> with n ≥ 3")

	return cmd
}

// classEquation parses "S3" or "D<n>" (case-insensitive).
func classEquation(group string) (classeq.Equation, error) {
	g := strings.ToUpper(strings.TrimSpace(group))
	if g == "S3" {
		return classeq.S3(), nil
	}
	if rest, ok := strings.CutPrefix(g, "D"); ok {
		n, err := strconv.Atoi(strings.TrimPrefix(rest, "_"))
		if err == nil {
			return classeq.Dihedral(n)
		}
	}

	return classeq.Equation{}, errors.Wrapf(ErrUnknownGroup, "%q (want S3 or D<n>)", group)
}

func buildClassEqView(eq classeq.Equation) classEqView {
	v := classEqView{
		Group:    eq.Group,
		Order:    eq.Order,
		Center:   eq.Center,
		Equation: eq.String(),
	}
	for _, c := range eq.Classes {
		v.Classes = append(v.Classes, classView{Representative: c.Representative, Size: c.Size(), Members: c.Members})
	}

	return v
}
