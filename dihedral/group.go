// SPDX-License-Identifier: MIT
// Package: lvgroup/dihedral
//
// group.go — Generate(n) and the group structure of D_n.
//
// Contract:
//   • n ≥ MinVertices (else ErrTooFewVertices).
//   • Exactly 2n elements, rotations r^0..r^{n−1} then reflections s..sr^{n−1}.
//   • Every element's action is a bijection on {0,…,n−1}.
//
// Complexity:
//   • Generate: O(n) time and space.
//   • Compose/Inverse/Order: O(1) (Order uses gcd, O(log n)).

package dihedral

import (
	"github.com/cockroachdb/errors"
)

// MinVertices is the smallest polygon with a dihedral symmetry group.
const MinVertices = 3

// Generate returns the 2n elements of D_n in deterministic order.
func Generate(n int) ([]Element, error) {
	if n < MinVertices {
		return nil, errors.Wrapf(ErrTooFewVertices, "Generate: n=%d < min=%d", n, MinVertices)
	}

	els := make([]Element, 0, 2*n)
	for k := 0; k < n; k++ {
		els = append(els, Element{Kind: Rotation, K: k, N: n})
	}
	for k := 0; k < n; k++ {
		els = append(els, Element{Kind: Reflection, K: k, N: n})
	}

	return els, nil
}

// Find returns the element of D_n whose ID is id ("r<k>" or "s<k>").
func Find(n int, id string) (Element, error) {
	els, err := Generate(n)
	if err != nil {
		return Element{}, err
	}
	for _, e := range els {
		if e.ID() == id {
			return e, nil
		}
	}

	return Element{}, errors.Wrapf(ErrUnknownID, "Find(n=%d, %q)", n, id)
}

// Compose returns c with c.Act(i) == a.Act(b.Act(i)): b first, then a.
//
// With R_k(i) = i+k and S_k(i) = −(i+k) (mod n):
//
//	R_a∘R_b = R_{a+b}    R_a∘S_b = S_{b−a}
//	S_a∘R_b = S_{a+b}    S_a∘S_b = R_{b−a}
func Compose(a, b Element) (Element, error) {
	if a.N != b.N {
		return Element{}, errors.Wrapf(ErrSizeMismatch, "Compose(%s in D_%d, %s in D_%d)", a, a.N, b, b.N)
	}
	n := a.N

	switch {
	case a.Kind == Rotation && b.Kind == Rotation:
		return Element{Kind: Rotation, K: mod(a.K+b.K, n), N: n}, nil
	case a.Kind == Rotation:
		return Element{Kind: Reflection, K: mod(b.K-a.K, n), N: n}, nil
	case b.Kind == Rotation:
		return Element{Kind: Reflection, K: mod(a.K+b.K, n), N: n}, nil
	default:
		return Element{Kind: Rotation, K: mod(b.K-a.K, n), N: n}, nil
	}
}

// Inverse returns e⁻¹. Reflections are involutions.
func Inverse(e Element) Element {
	if e.Kind == Reflection {
		return e
	}

	return Element{Kind: Rotation, K: mod(-e.K, e.N), N: e.N}
}

// Order returns the smallest m ≥ 1 with e^m = identity.
func Order(e Element) int {
	if e.Kind == Reflection {
		return 2
	}
	if e.N < 1 {
		return 1
	}

	return e.N / gcd(e.N, e.K)
}

// Stabilizer returns the elements fixing vertex v, in input order.
// For D_n this is always {e, sr^{(−2v) mod n}}.
func Stabilizer(els []Element, v int) []Element {
	var out []Element
	for _, e := range els {
		if e.Act(v) == v {
			out = append(out, e)
		}
	}

	return out
}

// Orbit returns the distinct images of v under els, ascending.
func Orbit(els []Element, v int) []int {
	if len(els) == 0 {
		return nil
	}
	seen := make([]bool, els[0].N)
	for _, e := range els {
		seen[e.Act(v)] = true
	}

	var out []int
	for i, ok := range seen {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// OrbitStabilizerReport bundles what the orbit–stabilizer display needs.
type OrbitStabilizerReport struct {
	N          int
	Vertex     int
	Orbit      []int
	Stabilizer []Element
	GroupOrder int
}

// Holds reports whether |G| = |orbit| · |stabilizer|.
func (r OrbitStabilizerReport) Holds() bool {
	return r.GroupOrder == len(r.Orbit)*len(r.Stabilizer)
}

// OrbitStabilizer generates D_n and computes the orbit and stabilizer of v.
//
// Errors:
//   - ErrTooFewVertices   — n < MinVertices.
//   - ErrVertexOutOfRange — v ∉ [0, n).
func OrbitStabilizer(n, v int) (OrbitStabilizerReport, error) {
	els, err := Generate(n)
	if err != nil {
		return OrbitStabilizerReport{}, err
	}
	if v < 0 || v >= n {
		return OrbitStabilizerReport{}, errors.Wrapf(ErrVertexOutOfRange, "OrbitStabilizer: v=%d, n=%d", v, n)
	}

	return OrbitStabilizerReport{
		N:          n,
		Vertex:     v,
		Orbit:      Orbit(els, v),
		Stabilizer: Stabilizer(els, v),
		GroupOrder: len(els),
	}, nil
}

// gcd returns the greatest common divisor of a ≥ 1 and b ≥ 0.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
