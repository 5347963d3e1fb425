// SPDX-License-Identifier: MIT
// Package: lvgroup/correspondence
//
// errors.go — sentinel errors for the subgroup lattice.

package correspondence

import "github.com/cockroachdb/errors"

var (
	// ErrNotNormal indicates the chosen subgroup is not normal in D_n,
	// so D_n/N is not a group.
	ErrNotNormal = errors.New("correspondence: subgroup is not normal")
)
