// SPDX-License-Identifier: MIT
// Package: lvgroup/cubic
//
// solve.go — Durand–Kerner iteration.
//
// Algorithm Outline:
//  1. z₀, z₁, z₂ ← seeds.
//  2. Repeat `iterations` times, for i = 0, 1, 2 with {j, k} the other two
//     indices in ascending order:
//     zᵢ ← zᵢ − f(zᵢ) / ((zᵢ − zⱼ)·(zᵢ − zₖ))
//     Sequential reads zⱼ, zₖ as already updated in this iteration;
//     Simultaneous reads them from the previous iteration.
//  3. Optional: stop early once max |correction| ≤ tolerance.
//  4. Return (z₀, z₁, z₂).
//
// Degenerate step: if (zᵢ − zⱼ)·(zᵢ − zₖ) is exactly zero the guess is left
// unchanged for that step instead of becoming NaN.
//
// Complexity: O(iterations) time, O(1) space.

package cubic

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/cplx"
)

// others lists, for each index, the two remaining indices in ascending order.
var others = [3][2]int{{1, 2}, {0, 2}, {0, 1}}

// SolveCubic returns the roots of x³ + a·x² + b·x + c using the default
// seeds, 20 Sequential iterations and no early exit. It never fails;
// non-finite coefficients simply propagate into the result.
func SolveCubic(a, b, c float64) Roots {
	return iterate(Coefficients{A: a, B: b, C: c}, newSolverConfig())
}

// Solve validates coeffs and runs the iteration configured by opts.
//
// Errors:
//   - ErrNonFiniteCoefficient — a, b or c is NaN or ±Inf.
func Solve(coeffs Coefficients, opts ...Option) (Roots, error) {
	if !coeffs.Finite() {
		return Roots{}, errors.Wrapf(ErrNonFiniteCoefficient,
			"Solve(a=%v, b=%v, c=%v)", coeffs.A, coeffs.B, coeffs.C)
	}

	return iterate(coeffs, newSolverConfig(opts...)), nil
}

// iterate runs the configured number of Durand–Kerner sweeps.
func iterate(coeffs Coefficients, cfg solverConfig) Roots {
	z := Roots(cfg.seeds)
	for it := 0; it < cfg.iterations; it++ {
		var worst float64
		if cfg.mode == Simultaneous {
			z, worst = sweepSimultaneous(coeffs, z)
		} else {
			z, worst = sweepSequential(coeffs, z)
		}
		if cfg.tolerance > 0 && worst <= cfg.tolerance {
			break
		}
	}

	return z
}

// sweepSequential corrects z[0], z[1], z[2] in place, each reading the
// newest values of the other two.
func sweepSequential(coeffs Coefficients, z Roots) (Roots, float64) {
	var worst float64
	for i := range z {
		j, k := others[i][0], others[i][1]
		var step float64
		z[i], step = correct(coeffs, z[i], z[j], z[k])
		worst = math.Max(worst, step)
	}

	return z, worst
}

// sweepSimultaneous corrects all guesses from the snapshot prev.
func sweepSimultaneous(coeffs Coefficients, prev Roots) (Roots, float64) {
	var (
		next  Roots
		worst float64
	)
	for i := range prev {
		j, k := others[i][0], others[i][1]
		var step float64
		next[i], step = correct(coeffs, prev[i], prev[j], prev[k])
		worst = math.Max(worst, step)
	}

	return next, worst
}

// correct returns the Weierstrass update of z against u and v plus the
// magnitude of the applied correction. A vanishing denominator leaves z
// unchanged and reports +Inf so a tolerance never treats it as converged.
func correct(coeffs Coefficients, z, u, v cplx.Complex) (cplx.Complex, float64) {
	denom := cplx.Mul(cplx.Sub(z, u), cplx.Sub(z, v))
	delta, err := cplx.Div(coeffs.Eval(z), denom)
	if err != nil {
		return z, math.Inf(1)
	}

	return cplx.Sub(z, delta), cplx.Abs(delta)
}

// Residuals returns |f(zᵢ)| for each root.
func Residuals(coeffs Coefficients, roots Roots) [3]float64 {
	var out [3]float64
	for i, z := range roots {
		out[i] = cplx.Abs(coeffs.Eval(z))
	}

	return out
}

// MaxResidual returns the largest of Residuals(coeffs, roots).
func MaxResidual(coeffs Coefficients, roots Roots) float64 {
	r := Residuals(coeffs, roots)

	return math.Max(r[0], math.Max(r[1], r[2]))
}
