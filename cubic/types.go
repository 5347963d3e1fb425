// SPDX-License-Identifier: MIT
// Package: lvgroup/cubic
//
// types.go — coefficient/root containers and update modes.

package cubic

import (
	"math"

	"github.com/katalvlaran/lvgroup/cplx"
)

// Coefficients holds a, b, c of the monic cubic x³ + a·x² + b·x + c.
type Coefficients struct {
	A float64
	B float64
	C float64
}

// Finite reports whether all three coefficients are finite.
func (c Coefficients) Finite() bool {
	for _, v := range [3]float64{c.A, c.B, c.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Eval returns f(x) = x³ + a·x² + b·x + c.
//
// The coefficients are lifted to complex values and the terms are summed
// left to right as ((x³ + a·x²) + b·x) + c; keep this order, the golden
// root fixtures depend on it.
func (c Coefficients) Eval(x cplx.Complex) cplx.Complex {
	x2 := cplx.Mul(x, x)
	x3 := cplx.Mul(x2, x)
	ax2 := cplx.Mul(cplx.Real(c.A), x2)
	bx := cplx.Mul(cplx.Real(c.B), x)

	res := cplx.Add(x3, ax2)
	res = cplx.Add(res, bx)

	return cplx.Add(res, cplx.Real(c.C))
}

// Roots is an ordered triple of computed roots.
type Roots [3]cplx.Complex

// UpdateMode selects how the three corrections of one iteration read the
// other guesses.
//
//   - Sequential   — p is corrected first; q then reads the new p and the old r;
//     r reads the new p and the new q. This is the default.
//   - Simultaneous — every correction reads the guesses as they were at the
//     start of the iteration.
//
// Both converge to the same roots for well-separated inputs; last bits and
// near-degenerate behavior differ.
type UpdateMode int

const (
	// Sequential applies each correction immediately (Gauss–Seidel order).
	Sequential UpdateMode = iota

	// Simultaneous corrects all guesses from a snapshot (Jacobi order).
	Simultaneous
)

// String returns "sequential" or "simultaneous".
func (m UpdateMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Simultaneous:
		return "simultaneous"
	default:
		return "unknown"
	}
}

// ParseUpdateMode maps "sequential"/"simultaneous" to a mode.
func ParseUpdateMode(s string) (UpdateMode, bool) {
	switch s {
	case "sequential", "":
		return Sequential, true
	case "simultaneous":
		return Simultaneous, true
	default:
		return Sequential, false
	}
}

// Default iteration budget and seeds.
const DefaultIterations = 20

// defaultSeeds are the fixed starting guesses: pairwise distinct, non-collinear.
var defaultSeeds = [3]cplx.Complex{
	{Re: 0.4, Im: 0.9},
	{Re: -0.9, Im: 0.4},
	{Re: 0.5, Im: -0.8},
}

// DefaultSeeds returns a copy of the fixed starting guesses.
func DefaultSeeds() [3]cplx.Complex { return defaultSeeds }
