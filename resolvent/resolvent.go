// SPDX-License-Identifier: MIT
// Package: lvgroup/resolvent
//
// resolvent.go — Lagrange resolvent evaluation.

package resolvent

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvgroup/cplx"
	"github.com/katalvlaran/lvgroup/cubic"
	"github.com/katalvlaran/lvgroup/perm"
)

// Omega and OmegaSq are the primitive cube roots of unity e^{2πi/3} and e^{4πi/3}.
var (
	Omega   = cplx.FromAngle(2 * math.Pi / 3)
	OmegaSq = cplx.FromAngle(4 * math.Pi / 3)
)

// Value returns y = (x₁ + ω·x₂ + ω²·x₃)³ with x = perm.Apply(roots, p).
// p must be a valid permutation.
func Value(roots cubic.Roots, p perm.Permutation) cplx.Complex {
	x := perm.Apply([3]cplx.Complex(roots), p)
	term2 := cplx.Mul(x[1], Omega)
	term3 := cplx.Mul(x[2], OmegaSq)
	sum := cplx.Add(cplx.Add(x[0], term2), term3)

	return cplx.Cube(sum)
}

// Evaluate returns |Value(roots, p)|.
func Evaluate(roots cubic.Roots, p perm.Permutation) float64 {
	return cplx.Abs(Value(roots, p))
}

// Entry is the resolvent under one S₃ element.
type Entry struct {
	Element   perm.Element
	Value     cplx.Complex
	Magnitude float64
}

// Table evaluates the resolvent for every element of S₃, in table order.
func Table(roots cubic.Roots) []Entry {
	els := perm.S3()
	out := make([]Entry, len(els))
	for i, e := range els {
		y := Value(roots, e.Perm)
		out[i] = Entry{Element: e, Value: y, Magnitude: cplx.Abs(y)}
	}

	return out
}

// Distinct returns the magnitudes in entries that differ by more than eps
// (relative to max(1, |m|)), ascending.
func Distinct(entries []Entry, eps float64) []float64 {
	mags := make([]float64, len(entries))
	for i, e := range entries {
		mags[i] = e.Magnitude
	}
	sort.Float64s(mags)

	var out []float64
	for _, m := range mags {
		if len(out) > 0 && math.Abs(m-out[len(out)-1]) <= eps*math.Max(1, math.Abs(m)) {
			continue
		}
		out = append(out, m)
	}

	return out
}
