// SPDX-License-Identifier: MIT
// Package: lvgroup/sylow
//
// sylow.go — admissible Sylow counts.
//
// Complexity: O(√order) for factoring out p and enumerating divisors of m.

package sylow

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Analysis is the Sylow counting data for one (order, p) pair.
type Analysis struct {
	Order      int   // |G|
	P          int   // the prime
	K          int   // exponent of p in |G|
	M          int   // |G| / pᵏ
	Divisors   []int // divisors of M, ascending
	Candidates []int // divisors d of M with d ≡ 1 (mod p), ascending
}

// SubgroupOrder returns pᵏ, the order of a Sylow p-subgroup.
func (a Analysis) SubgroupOrder() int { return a.Order / a.M }

// Normal reports whether n_p is forced to be 1.
func (a Analysis) Normal() bool {
	return len(a.Candidates) == 1 && a.Candidates[0] == 1
}

// Analyze computes the admissible values of n_p for a group of the given order.
//
// Errors:
//   - ErrInvalidOrder — order < 1.
//   - ErrNotPrime     — p is not prime.
//   - ErrNotDivisible — p ∤ order.
func Analyze(order, p int) (Analysis, error) {
	if order < 1 {
		return Analysis{}, errors.Wrapf(ErrInvalidOrder, "Analyze(order=%d, p=%d)", order, p)
	}
	if !IsPrime(p) {
		return Analysis{}, errors.Wrapf(ErrNotPrime, "Analyze(order=%d, p=%d)", order, p)
	}
	if order%p != 0 {
		return Analysis{}, errors.Wrapf(ErrNotDivisible, "Analyze(order=%d, p=%d)", order, p)
	}

	k, m := 0, order
	for m%p == 0 {
		m /= p
		k++
	}

	a := Analysis{Order: order, P: p, K: k, M: m, Divisors: Divisors(m)}
	for _, d := range a.Divisors {
		if d%p == 1 {
			a.Candidates = append(a.Candidates, d)
		}
	}

	return a, nil
}

// Divisors returns the positive divisors of n ≥ 1, ascending; nil for n < 1.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}

	var out []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		out = append(out, d)
		if d != n/d {
			out = append(out, n/d)
		}
	}
	sort.Ints(out)

	return out
}

// IsPrime reports whether n is prime (trial division).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}
