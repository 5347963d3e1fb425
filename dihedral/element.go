// SPDX-License-Identifier: MIT
// Package: lvgroup/dihedral
//
// element.go — the tagged Element value and its action.

package dihedral

import (
	"fmt"
	"strconv"
)

// Kind tags an element as a rotation or a reflection.
type Kind int

const (
	// Rotation is r^k.
	Rotation Kind = iota

	// Reflection is sr^k.
	Reflection
)

// String returns "rotation" or "reflection".
func (k Kind) String() string {
	switch k {
	case Rotation:
		return "rotation"
	case Reflection:
		return "reflection"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Element is r^K (Kind=Rotation) or sr^K (Kind=Reflection) in D_N, 0 ≤ K < N.
type Element struct {
	Kind Kind
	K    int
	N    int
}

// Action maps vertex i of an n-gon to its image. It uses the n passed in,
// not e.N, so a renderer can drive it with its own polygon size.
// With n < 1 there is no polygon and i is returned unchanged.
func (e Element) Action(i, n int) int {
	if n < 1 {
		return i
	}
	rotated := mod(i+e.K, n)
	if e.Kind == Reflection {
		return mod(n-rotated, n)
	}

	return rotated
}

// Act is Action(i, e.N).
func (e Element) Act(i int) int { return e.Action(i, e.N) }

// IsIdentity reports whether e is r^0.
func (e Element) IsIdentity() bool { return e.Kind == Rotation && e.K == 0 }

// ID is "r<k>" for rotations and "s<k>" for reflections.
func (e Element) ID() string {
	if e.Kind == Reflection {
		return "s" + strconv.Itoa(e.K)
	}

	return "r" + strconv.Itoa(e.K)
}

// LaTeX returns e, r, r^k, s or sr^k.
func (e Element) LaTeX() string {
	switch {
	case e.Kind == Rotation && e.K == 0:
		return "e"
	case e.Kind == Rotation && e.K == 1:
		return "r"
	case e.Kind == Rotation:
		return "r^" + strconv.Itoa(e.K)
	case e.K == 0:
		return "s"
	default:
		return "sr^" + strconv.Itoa(e.K)
	}
}

// Name is a human-readable label: "Identity", "Rotation k" or "Reflection k".
func (e Element) Name() string {
	switch {
	case e.IsIdentity():
		return "Identity"
	case e.Kind == Rotation:
		return fmt.Sprintf("Rotation %d", e.K)
	default:
		return fmt.Sprintf("Reflection %d", e.K)
	}
}

// String implements fmt.Stringer with the LaTeX form.
func (e Element) String() string { return e.LaTeX() }

// Permutation returns the image of every vertex, i.e. [Act(0), …, Act(N−1)].
func (e Element) Permutation() []int {
	out := make([]int, e.N)
	for i := range out {
		out[i] = e.Act(i)
	}

	return out
}

// mod returns x mod n in [0, n), or x itself when n < 1.
func mod(x, n int) int {
	if n < 1 {
		return x
	}
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}
