// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgroup/cplx"
)

// complexView is a complex number as emitted in json/yaml.
type complexView struct {
	Re   float64 `json:"re" yaml:"re"`
	Im   float64 `json:"im" yaml:"im"`
	Text string  `json:"text" yaml:"text"`
}

func newComplexView(z cplx.Complex) complexView {
	return complexView{Re: z.Re, Im: z.Im, Text: z.String()}
}

func ftoa(x float64) string { return strconv.FormatFloat(x, 'g', 12, 64) }

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
