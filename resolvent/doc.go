// SPDX-License-Identifier: MIT

// Package resolvent evaluates the Lagrange resolvent of a cubic's roots
// under a chosen reordering from S₃:
//
//	y = (x₁ + ω·x₂ + ω²·x₃)³
//
// where (x₁, x₂, x₃) = perm.Apply(roots, p) and ω = e^{2πi/3}.
//
// Cubing makes y invariant under the cyclic shifts (1 2 3), (1 3 2), so y
// takes at most two values as p ranges over S₃: one on the even
// permutations and one on the odd ones. Only |y| is surfaced to the
// presentation layer.
package resolvent
