// SPDX-License-Identifier: MIT

// Package sylow applies the counting half of Sylow's theorems.
//
// For a group of order |G| = pᵏ·m with p prime and p ∤ m, the number n_p of
// Sylow p-subgroups satisfies
//
//	n_p | m   and   n_p ≡ 1 (mod p).
//
// Analyze lists the divisors of m and the admissible values of n_p. When the
// only candidate is 1 the Sylow p-subgroup is unique, hence normal; this is
// the usual route to "no group of order 15 is simple".
package sylow
