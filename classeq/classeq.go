// SPDX-License-Identifier: MIT
// Package: lvgroup/classeq
//
// classeq.go — conjugacy classes, center and the class equation.

package classeq

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgroup/dihedral"
	"github.com/katalvlaran/lvgroup/perm"
)

// Class is one conjugacy class, named by its members' display labels.
type Class struct {
	Representative string
	Members        []string
}

// Size is |class|.
func (c Class) Size() int { return len(c.Members) }

// Equation is the class equation of a finite group.
type Equation struct {
	Group   string
	Order   int
	Center  []string // members of Z(G)
	Classes []Class  // ordered by size, then first appearance
}

// Terms returns the summands of the equation: |Z(G)| first, followed by
// the sizes of the non-central classes, ascending.
func (e Equation) Terms() []int {
	var terms []int
	if len(e.Center) > 0 {
		terms = append(terms, len(e.Center))
	}
	for _, c := range e.Classes {
		if c.Size() > 1 {
			terms = append(terms, c.Size())
		}
	}

	return terms
}

// String renders "|G| = |Z| + k₁ + k₂ + …".
func (e Equation) String() string {
	terms := e.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.Itoa(t)
	}

	return strconv.Itoa(e.Order) + " = " + strings.Join(parts, " + ")
}

// S3 returns the class equation of the symmetric group on three items.
func S3() Equation {
	els := perm.S3()
	labels := make([]string, len(els))
	for i, e := range els {
		labels[i] = e.Label
	}

	mul := func(i, j int) int {
		p, _ := perm.Lookup(perm.Compose(els[i].Perm, els[j].Perm))
		return indexOf(els, p.ID)
	}
	inv := func(i int) int {
		p, _ := perm.Lookup(perm.Inverse(els[i].Perm))
		return indexOf(els, p.ID)
	}

	return build("S_3", labels, mul, inv)
}

// Dihedral returns the class equation of D_n.
func Dihedral(n int) (Equation, error) {
	els, err := dihedral.Generate(n)
	if err != nil {
		return Equation{}, err
	}

	labels := make([]string, len(els))
	index := make(map[dihedral.Element]int, len(els))
	for i, e := range els {
		labels[i] = e.LaTeX()
		index[e] = i
	}

	mul := func(i, j int) int {
		c, _ := dihedral.Compose(els[i], els[j]) // same n by construction
		return index[c]
	}
	inv := func(i int) int { return index[dihedral.Inverse(els[i])] }

	return build("D_"+strconv.Itoa(n), labels, mul, inv), nil
}

// build partitions {0,…,len(labels)−1} into conjugacy classes using the
// group's multiplication table (mul) and inverse map (inv).
func build(name string, labels []string, mul func(i, j int) int, inv func(i int) int) Equation {
	n := len(labels)
	classOf := make([]int, n)
	for i := range classOf {
		classOf[i] = -1
	}

	var classes [][]int
	for x := 0; x < n; x++ {
		if classOf[x] >= 0 {
			continue
		}
		id := len(classes)
		var members []int
		for g := 0; g < n; g++ {
			y := mul(mul(g, x), inv(g))
			if classOf[y] < 0 {
				classOf[y] = id
				members = append(members, y)
			}
		}
		sort.Ints(members)
		classes = append(classes, members)
	}

	sort.SliceStable(classes, func(a, b int) bool { return len(classes[a]) < len(classes[b]) })

	eq := Equation{Group: name, Order: n}
	for _, members := range classes {
		c := Class{Representative: labels[members[0]]}
		for _, m := range members {
			c.Members = append(c.Members, labels[m])
		}
		if len(members) == 1 {
			eq.Center = append(eq.Center, labels[members[0]])
		}
		eq.Classes = append(eq.Classes, c)
	}

	return eq
}

func indexOf(els []perm.Element, id string) int {
	for i, e := range els {
		if e.ID == id {
			return i
		}
	}

	return -1
}
