// SPDX-License-Identifier: MIT
// Package: lvgroup/cubic
//
// errors.go — sentinel errors for the cubic solver.
//
// Numerical non-convergence is NOT an error: the iteration budget is the
// termination condition and the caller receives whatever the last step
// produced.

package cubic

import "github.com/cockroachdb/errors"

// ErrNonFiniteCoefficient is returned by Solve when a coefficient is NaN or ±Inf.
var ErrNonFiniteCoefficient = errors.New("cubic: coefficient is NaN or Inf")
