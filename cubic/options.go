// SPDX-License-Identifier: MIT
// Package: lvgroup/cubic
//
// options.go — functional options for Solve.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Solve itself never panics.
//   • Later options override earlier ones.
//   • The zero set of options reproduces SolveCubic exactly.

package cubic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgroup/cplx"
)

// Option customizes a single Solve call.
type Option func(*solverConfig)

// solverConfig is resolved once per call and passed by value.
type solverConfig struct {
	iterations int
	tolerance  float64 // 0 disables the early exit
	seeds      [3]cplx.Complex
	mode       UpdateMode
}

// newSolverConfig returns defaults with opts applied in order.
func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		iterations: DefaultIterations,
		tolerance:  0,
		seeds:      defaultSeeds,
		mode:       Sequential,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIterations sets the iteration budget. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("cubic: WithIterations(%d)", n))
	}
	return func(c *solverConfig) {
		c.iterations = n
	}
}

// WithTolerance enables an early exit once every correction of an iteration
// has magnitude ≤ eps. eps == 0 disables it. Panics on negative or NaN eps.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("cubic: WithTolerance(%v)", eps))
	}
	return func(c *solverConfig) {
		c.tolerance = eps
	}
}

// WithSeeds replaces the starting guesses. Panics unless all three are
// finite and pairwise distinct; coincident seeds make the correction
// denominator vanish.
func WithSeeds(p, q, r cplx.Complex) Option {
	seeds := [3]cplx.Complex{p, q, r}
	for i, s := range seeds {
		if !cplx.IsFinite(s) {
			panic(fmt.Sprintf("cubic: WithSeeds: seed %d is not finite", i))
		}
	}
	if p == q || p == r || q == r {
		panic("cubic: WithSeeds: seeds must be pairwise distinct")
	}
	return func(c *solverConfig) {
		c.seeds = seeds
	}
}

// WithUpdate selects Sequential or Simultaneous updates. Panics on unknown modes.
func WithUpdate(mode UpdateMode) Option {
	if mode != Sequential && mode != Simultaneous {
		panic(fmt.Sprintf("cubic: WithUpdate(%d)", int(mode)))
	}
	return func(c *solverConfig) {
		c.mode = mode
	}
}
