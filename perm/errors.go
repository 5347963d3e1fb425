// SPDX-License-Identifier: MIT
// Package: lvgroup/perm
//
// errors.go — sentinel errors for S₃ table access.

package perm

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange indicates a table index outside [0, 6).
	ErrOutOfRange = errors.New("perm: index out of range")

	// ErrUnknownID indicates an element ID that is not in the S₃ table.
	ErrUnknownID = errors.New("perm: unknown element id")

	// ErrInvalidPermutation indicates an array that is not a bijection on {0,1,2}.
	ErrInvalidPermutation = errors.New("perm: not a permutation of {0,1,2}")
)
