// SPDX-License-Identifier: MIT
// Package: lvgroup/perm
//
// permutation.go — the Permutation value and its group operations.

package perm

import "github.com/cockroachdb/errors"

// Degree is the number of permuted items.
const Degree = 3

// Permutation is a bijection on {0,1,2} written as the image of 0, 1, 2.
type Permutation [Degree]int

// Identity is the permutation that moves nothing.
var Identity = Permutation{0, 1, 2}

// Valid reports whether p uses each of 0, 1, 2 exactly once.
func (p Permutation) Valid() bool {
	var seen [Degree]bool
	for _, v := range p {
		if v < 0 || v >= Degree || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Validate returns ErrInvalidPermutation (wrapped with p) when !p.Valid().
func Validate(p Permutation) error {
	if !p.Valid() {
		return errors.Wrapf(ErrInvalidPermutation, "Validate(%v)", p)
	}

	return nil
}

// Apply reorders values by index substitution:
//
//	Apply(v, p) = [v[p[0]], v[p[1]], v[p[2]]]
//
// p must be valid; an index outside {0,1,2} panics like any array access.
func Apply[T any](values [Degree]T, p Permutation) [Degree]T {
	return [Degree]T{values[p[0]], values[p[1]], values[p[2]]}
}

// Compose returns r with Apply(Apply(v, p), q) == Apply(v, r),
// i.e. r[i] = p[q[i]].
func Compose(p, q Permutation) Permutation {
	var r Permutation
	for i := range r {
		r[i] = p[q[i]]
	}

	return r
}

// Inverse returns the permutation that undoes p.
func Inverse(p Permutation) Permutation {
	var inv Permutation
	for i, v := range p {
		inv[v] = i
	}

	return inv
}

// IsIdentity reports whether p == Identity.
func (p Permutation) IsIdentity() bool { return p == Identity }

// Sign returns +1 for even and −1 for odd permutations (inversion count parity).
func (p Permutation) Sign() int {
	inversions := 0
	for i := 0; i < Degree; i++ {
		for j := i + 1; j < Degree; j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}

	return -1
}

// Order returns the smallest k ≥ 1 with pᵏ = Identity.
func (p Permutation) Order() int {
	k, acc := 1, p
	for !acc.IsIdentity() {
		acc = Compose(acc, p)
		k++
	}

	return k
}
