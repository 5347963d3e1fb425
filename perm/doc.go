// SPDX-License-Identifier: MIT

// Package perm models the symmetric group S₃: the six permutations of three
// items, used to reorder the roots of a cubic before evaluating a Lagrange
// resolvent.
//
// A Permutation is the image of (0, 1, 2) in order. Apply substitutes by
// index: Apply(v, p) = [v[p[0]], v[p[1]], v[p[2]]].
//
// The table returned by S3 is fixed:
//
//	ID    Label     Perm
//	e     e         [0 1 2]
//	12    (1 2)     [1 0 2]
//	13    (1 3)     [2 1 0]
//	23    (2 3)     [0 2 1]
//	123   (1 2 3)   [1 2 0]
//	132   (1 3 2)   [2 0 1]
//
// Lookups that fall outside the table return ErrOutOfRange or ErrUnknownID.
package perm
