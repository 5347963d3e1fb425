// SPDX-License-Identifier: MIT
// Package: lvgroup/correspondence
//
// lattice.go — the quotient D_n/N and the H ↦ H/N correspondence.
//
// Contract:
//   • Cosets are ordered by their representative, the member that comes
//     first in dihedral.Generate order; coset 0 is N itself.
//   • Pairs lists every H with N ≤ H ≤ D_n in Subgroups order, so Pairs[0]
//     is D_n and the last pair is N.
//   • Covers holds (upper, lower) index pairs of the Hasse diagram; the
//     same pairs describe the quotient lattice.

package correspondence

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/dihedral"
)

// Coset is gN for the representative g.
type Coset struct {
	Representative dihedral.Element
	Members        []dihedral.Element
}

// Label is "[g]", the class of g in D_n/N.
func (c Coset) Label() string { return "[" + c.Representative.LaTeX() + "]" }

// Quotient is D_n/N with its cosets enumerated.
type Quotient struct {
	Normal  Subgroup
	Cosets  []Coset
	cosetOf []int // element index → coset index
}

// NewQuotient forms D_n/N. It fails with ErrNotNormal unless N ⊴ D_n.
func NewQuotient(normal Subgroup) (Quotient, error) {
	if !normal.IsNormal() {
		return Quotient{}, errors.Wrapf(ErrNotNormal, "NewQuotient: %s in D_%d", normal, normal.N)
	}

	n := normal.N
	q := Quotient{Normal: normal, cosetOf: make([]int, 2*n)}
	for i := range q.cosetOf {
		q.cosetOf[i] = -1
	}
	members := normal.Elements()
	for i := 0; i < 2*n; i++ {
		if q.cosetOf[i] >= 0 {
			continue
		}
		g := element(n, i)
		c := Coset{Representative: g}
		for _, m := range members {
			gm, _ := dihedral.Compose(g, m)
			q.cosetOf[index(gm)] = len(q.Cosets)
			c.Members = append(c.Members, gm)
		}
		sort.Slice(c.Members, func(a, b int) bool { return index(c.Members[a]) < index(c.Members[b]) })
		q.Cosets = append(q.Cosets, c)
	}

	return q, nil
}

// Order is |D_n/N|.
func (q Quotient) Order() int { return len(q.Cosets) }

// CosetOf returns the index of gN in q.Cosets.
func (q Quotient) CosetOf(g dihedral.Element) int { return q.cosetOf[index(g)] }

// Mul multiplies cosets: (aN)(bN) = (ab)N.
func (q Quotient) Mul(a, b int) int {
	ab, _ := dihedral.Compose(q.Cosets[a].Representative, q.Cosets[b].Representative)
	return q.CosetOf(ab)
}

// Image returns H/N as ascending coset indices.
func (q Quotient) Image(h Subgroup) []int {
	seen := make([]bool, len(q.Cosets))
	for _, g := range h.Elements() {
		seen[q.CosetOf(g)] = true
	}
	var out []int
	for i, in := range seen {
		if in {
			out = append(out, i)
		}
	}

	return out
}

// Subgroups returns every subgroup of D_n/N as ascending coset indices,
// found by closing pairs of cosets under Mul. Order is unspecified beyond
// being deterministic.
func (q Quotient) Subgroups() [][]int {
	m := len(q.Cosets)
	seen := make(map[string]bool)
	var out [][]int
	for a := 0; a < m; a++ {
		for b := a; b < m; b++ {
			in := make([]bool, m)
			in[0] = true
			queue := []int{0}
			for len(queue) > 0 {
				x := queue[0]
				queue = queue[1:]
				for _, g := range [2]int{a, b} {
					if y := q.Mul(g, x); !in[y] {
						in[y] = true
						queue = append(queue, y)
					}
				}
			}
			var sub []int
			for i, ok := range in {
				if ok {
					sub = append(sub, i)
				}
			}
			if k := intsKey(sub); !seen[k] {
				seen[k] = true
				out = append(out, sub)
			}
		}
	}

	return out
}

// Pair is one H with N ≤ H ≤ D_n together with H/N.
type Pair struct {
	Subgroup Subgroup
	Image    []int // indices into Quotient.Cosets
}

// ImageOrder is |H/N|.
func (p Pair) ImageOrder() int { return len(p.Image) }

// Lattice is the correspondence between the subgroups of D_n above N and
// the subgroups of D_n/N.
type Lattice struct {
	Quotient Quotient
	Pairs    []Pair
	Covers   [][2]int
}

// Build computes the lattice for a normal subgroup N of D_n.
//
// Errors:
//   - ErrNotNormal — N is not normal.
//
// Complexity: O(n³) for the subgroup enumeration, O(p³) for p pairs' covers.
func Build(normal Subgroup) (Lattice, error) {
	q, err := NewQuotient(normal)
	if err != nil {
		return Lattice{}, err
	}
	all, err := Subgroups(normal.N)
	if err != nil {
		return Lattice{}, err
	}

	lat := Lattice{Quotient: q}
	for _, h := range all {
		if normal.IsSubgroupOf(h) {
			lat.Pairs = append(lat.Pairs, Pair{Subgroup: h, Image: q.Image(h)})
		}
	}
	lat.Covers = covers(lat.Pairs)

	return lat, nil
}

// Dihedral builds the lattice of D_n over N = ⟨ids⟩, where ids are element
// IDs such as "r2" or "s1". With no ids, N is the center Z(D_n).
//
// Errors:
//   - dihedral.ErrTooFewVertices, dihedral.ErrUnknownID — from the lookup.
//   - ErrNotNormal — ⟨ids⟩ is not normal.
func Dihedral(n int, ids ...string) (Lattice, error) {
	var (
		normal Subgroup
		err    error
	)
	if len(ids) == 0 {
		normal, err = Center(n)
	} else {
		gens := make([]dihedral.Element, len(ids))
		for i, id := range ids {
			if gens[i], err = dihedral.Find(n, strings.TrimSpace(id)); err != nil {
				return Lattice{}, err
			}
		}
		normal, err = Generated(n, gens...)
	}
	if err != nil {
		return Lattice{}, err
	}

	return Build(normal)
}

// Holds checks the correspondence theorem on the computed data:
// |H/N| = |H|/|N| for every pair, H ↦ H/N is injective, its images are
// exactly the subgroups of D_n/N, and every cover maps to an inclusion.
func (l Lattice) Holds() bool {
	nOrder := l.Quotient.Normal.Order()
	images := make(map[string]bool, len(l.Pairs))
	for _, p := range l.Pairs {
		if p.Subgroup.Order() != nOrder*p.ImageOrder() {
			return false
		}
		k := intsKey(p.Image)
		if images[k] {
			return false
		}
		images[k] = true
	}

	quotientSubs := l.Quotient.Subgroups()
	if len(quotientSubs) != len(images) {
		return false
	}
	for _, s := range quotientSubs {
		if !images[intsKey(s)] {
			return false
		}
	}

	for _, c := range l.Covers {
		if !subset(l.Pairs[c[1]].Image, l.Pairs[c[0]].Image) {
			return false
		}
	}

	return true
}

// covers returns (upper, lower) pairs where lower ⊊ upper with nothing between.
func covers(pairs []Pair) [][2]int {
	properSub := func(a, b int) bool {
		return pairs[a].Subgroup.IsSubgroupOf(pairs[b].Subgroup) && !pairs[a].Subgroup.Equal(pairs[b].Subgroup)
	}

	var out [][2]int
	for up := range pairs {
		for lo := range pairs {
			if !properSub(lo, up) {
				continue
			}
			direct := true
			for mid := range pairs {
				if properSub(lo, mid) && properSub(mid, up) {
					direct = false
					break
				}
			}
			if direct {
				out = append(out, [2]int{up, lo})
			}
		}
	}

	return out
}

// subset reports a ⊆ b for ascending slices.
func subset(a, b []int) bool {
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x {
			j++
		}
		if j == len(b) || b[j] != x {
			return false
		}
	}

	return true
}

func intsKey(xs []int) string {
	var sb strings.Builder
	for _, x := range xs {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(',')
	}

	return sb.String()
}
