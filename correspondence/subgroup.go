// SPDX-License-Identifier: MIT
// Package: lvgroup/correspondence
//
// subgroup.go — subgroups of D_n as membership masks.
//
// Contract:
//   • Masks are indexed in dihedral.Generate order: r^0..r^{n−1}, then s..sr^{n−1}.
//   • Generated always contains the identity, even with no generators.
//   • Subgroups returns every subgroup exactly once, largest first.

package correspondence

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/dihedral"
)

// Subgroup is a subgroup of D_N.
type Subgroup struct {
	N    int
	mask []bool
}

// index is the position of e in dihedral.Generate(e.N).
func index(e dihedral.Element) int {
	if e.Kind == dihedral.Reflection {
		return e.N + e.K
	}

	return e.K
}

func element(n, i int) dihedral.Element {
	if i < n {
		return dihedral.Element{Kind: dihedral.Rotation, K: i, N: n}
	}

	return dihedral.Element{Kind: dihedral.Reflection, K: i - n, N: n}
}

// Generated returns ⟨gens⟩ ≤ D_n.
//
// Errors:
//   - dihedral.ErrTooFewVertices — n < dihedral.MinVertices.
//   - dihedral.ErrSizeMismatch   — a generator belongs to another D_m.
//   - dihedral.ErrUnknownID      — a generator exponent is outside [0, n).
//
// Complexity: O(|H|·len(gens)).
func Generated(n int, gens ...dihedral.Element) (Subgroup, error) {
	if n < dihedral.MinVertices {
		return Subgroup{}, errors.Wrapf(dihedral.ErrTooFewVertices, "Generated: n=%d < min=%d", n, dihedral.MinVertices)
	}
	for _, g := range gens {
		if g.N != n {
			return Subgroup{}, errors.Wrapf(dihedral.ErrSizeMismatch, "Generated: %s in D_%d, want D_%d", g, g.N, n)
		}
		if g.K < 0 || g.K >= n {
			return Subgroup{}, errors.Wrapf(dihedral.ErrUnknownID, "Generated: exponent %d outside [0, %d)", g.K, n)
		}
	}

	s := Subgroup{N: n, mask: make([]bool, 2*n)}
	s.mask[0] = true
	queue := []dihedral.Element{element(n, 0)}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			y, _ := dihedral.Compose(g, x) // same n, checked above
			if i := index(y); !s.mask[i] {
				s.mask[i] = true
				queue = append(queue, y)
			}
		}
	}

	return s, nil
}

// Whole returns D_n itself as a Subgroup.
func Whole(n int) (Subgroup, error) {
	if n < dihedral.MinVertices {
		return Subgroup{}, errors.Wrapf(dihedral.ErrTooFewVertices, "Whole: n=%d < min=%d", n, dihedral.MinVertices)
	}

	return Generated(n,
		dihedral.Element{Kind: dihedral.Rotation, K: 1, N: n},
		dihedral.Element{Kind: dihedral.Reflection, K: 0, N: n},
	)
}

// Subgroups returns every subgroup of D_n, ordered by descending order,
// then rotation-only before mixed, then by the generators of Label.
//
// Complexity: O(n³).
func Subgroups(n int) ([]Subgroup, error) {
	if n < dihedral.MinVertices {
		return nil, errors.Wrapf(dihedral.ErrTooFewVertices, "Subgroups: n=%d < min=%d", n, dihedral.MinVertices)
	}

	seen := make(map[string]bool)
	var out []Subgroup
	for i := 0; i < 2*n; i++ {
		for j := i; j < 2*n; j++ {
			s, _ := Generated(n, element(n, i), element(n, j))
			if k := s.key(); !seen[k] {
				seen[k] = true
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].less(out[b]) })

	return out, nil
}

// Center returns Z(D_n), the elements commuting with every element.
func Center(n int) (Subgroup, error) {
	els, err := dihedral.Generate(n)
	if err != nil {
		return Subgroup{}, err
	}

	s := Subgroup{N: n, mask: make([]bool, 2*n)}
	for _, z := range els {
		central := true
		for _, g := range els {
			zg, _ := dihedral.Compose(z, g)
			gz, _ := dihedral.Compose(g, z)
			if zg != gz {
				central = false
				break
			}
		}
		s.mask[index(z)] = central
	}

	return s, nil
}

// Order is |H|.
func (s Subgroup) Order() int {
	c := 0
	for _, in := range s.mask {
		if in {
			c++
		}
	}

	return c
}

// Contains reports whether e ∈ H.
func (s Subgroup) Contains(e dihedral.Element) bool {
	if e.N != s.N || e.K < 0 || e.K >= s.N {
		return false
	}

	return s.mask[index(e)]
}

// Elements lists the members in dihedral.Generate order.
func (s Subgroup) Elements() []dihedral.Element {
	out := make([]dihedral.Element, 0, len(s.mask))
	for i, in := range s.mask {
		if in {
			out = append(out, element(s.N, i))
		}
	}

	return out
}

// IsSubgroupOf reports whether H ≤ K.
func (s Subgroup) IsSubgroupOf(k Subgroup) bool {
	if s.N != k.N {
		return false
	}
	for i, in := range s.mask {
		if in && !k.mask[i] {
			return false
		}
	}

	return true
}

// Equal reports whether H and K have the same elements.
func (s Subgroup) Equal(k Subgroup) bool {
	return s.N == k.N && s.key() == k.key()
}

// IsNormal reports whether gHg⁻¹ = H for every g ∈ D_n.
func (s Subgroup) IsNormal() bool {
	els, err := dihedral.Generate(s.N)
	if err != nil {
		return false
	}
	for _, g := range els {
		gi := dihedral.Inverse(g)
		for _, h := range s.Elements() {
			gh, _ := dihedral.Compose(g, h)
			c, _ := dihedral.Compose(gh, gi)
			if !s.mask[index(c)] {
				return false
			}
		}
	}

	return true
}

// generators returns the canonical pair behind Label: the smallest positive
// rotation r^d and the reflection sr^k with the smallest k, when present.
func (s Subgroup) generators() []dihedral.Element {
	var gens []dihedral.Element
	for k := 1; k < s.N; k++ {
		if s.mask[k] {
			gens = append(gens, element(s.N, k))
			break
		}
	}
	for k := 0; k < s.N; k++ {
		if s.mask[s.N+k] {
			gens = append(gens, element(s.N, s.N+k))
			break
		}
	}

	return gens
}

// Label names H by its canonical generators, e.g. "⟨r^2, s⟩"; the trivial
// subgroup is "{e}".
func (s Subgroup) Label() string {
	gens := s.generators()
	if len(gens) == 0 {
		return "{e}"
	}
	parts := make([]string, len(gens))
	for i, g := range gens {
		parts[i] = g.LaTeX()
	}

	return "⟨" + strings.Join(parts, ", ") + "⟩"
}

// LaTeX is Label with \langle … \rangle delimiters.
func (s Subgroup) LaTeX() string {
	gens := s.generators()
	if len(gens) == 0 {
		return `\{e\}`
	}
	parts := make([]string, len(gens))
	for i, g := range gens {
		parts[i] = g.LaTeX()
	}

	return `\langle ` + strings.Join(parts, ", ") + ` \rangle`
}

// String implements fmt.Stringer with Label.
func (s Subgroup) String() string { return s.Label() }

func (s Subgroup) key() string {
	b := make([]byte, len(s.mask))
	for i, in := range s.mask {
		b[i] = '0'
		if in {
			b[i] = '1'
		}
	}

	return string(b)
}

func (s Subgroup) less(t Subgroup) bool {
	if so, to := s.Order(), t.Order(); so != to {
		return so > to
	}
	sg, tg := s.sortKey(), t.sortKey()
	for i := range sg {
		if sg[i] != tg[i] {
			return sg[i] < tg[i]
		}
	}

	return false
}

// sortKey is (has reflections, smallest rotation, smallest reflection).
func (s Subgroup) sortKey() [3]int {
	key := [3]int{0, s.N, -1}
	for _, g := range s.generators() {
		if g.Kind == dihedral.Rotation {
			key[1] = g.K
		} else {
			key[0] = 1
			key[2] = g.K
		}
	}

	return key
}
