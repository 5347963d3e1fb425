// SPDX-License-Identifier: MIT
// Package: lvgroup/sylow
//
// errors.go — sentinel errors for Sylow counting.

package sylow

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidOrder indicates a group order < 1.
	ErrInvalidOrder = errors.New("sylow: group order must be >= 1")

	// ErrNotPrime indicates p is not a prime number.
	ErrNotPrime = errors.New("sylow: p must be prime")

	// ErrNotDivisible indicates p does not divide the group order.
	ErrNotDivisible = errors.New("sylow: p does not divide the group order")
)
