// SPDX-License-Identifier: MIT
// Package: lvgroup/dihedral
//
// errors.go — sentinel errors for the dihedral generator.
//
// Callers MUST branch with errors.Is; context is attached with Wrapf.

package dihedral

import "github.com/cockroachdb/errors"

var (
	// ErrTooFewVertices indicates n < MinVertices.
	ErrTooFewVertices = errors.New("dihedral: polygon needs at least 3 vertices")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("dihedral: vertex index out of range")

	// ErrSizeMismatch indicates elements of different D_n were combined.
	ErrSizeMismatch = errors.New("dihedral: elements act on different polygons")

	// ErrUnknownID indicates an element ID that does not name a member of D_n.
	ErrUnknownID = errors.New("dihedral: unknown element id")
)
