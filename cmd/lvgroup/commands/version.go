// SPDX-License-Identifier: MIT

package commands

import (
	"runtime"

	"github.com/katalvlaran/lvgroup/internal/render"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with
// -ldflags "-X github.com/katalvlaran/lvgroup/cmd/lvgroup/commands.Version=v1.2.3".
var Version = "dev"

type versionView struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"go" yaml:"go"`
	Platform  string `json:"platform" yaml:"platform"`
}

func (v versionView) Tables() []render.Table {
	return []render.Table{{
		Rows: [][]string{
			{"Version", v.Version},
			{"Go", v.GoVersion},
			{"Platform", v.Platform},
		},
	}}
}

func newVersionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show lvgroup version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.write(cmd, versionView{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			})
		},
	}
}
