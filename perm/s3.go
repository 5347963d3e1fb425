// SPDX-License-Identifier: MIT
// Package: lvgroup/perm
//
// s3.go — the fixed S₃ table.

package perm

import "github.com/cockroachdb/errors"

// Element is one named member of S₃.
type Element struct {
	ID    string      // stable key: "e", "12", "13", "23", "123", "132"
	Label string      // cycle notation, e.g. "(1 2 3)"
	LaTeX string      // display form, e.g. `(1\,2\,3)`
	Perm  Permutation // image of (0,1,2)
}

// GroupOrder is |S₃|.
const GroupOrder = 6

var s3 = [GroupOrder]Element{
	{ID: "e", Label: "e", LaTeX: "e", Perm: Permutation{0, 1, 2}},
	{ID: "12", Label: "(1 2)", LaTeX: `(1\,2)`, Perm: Permutation{1, 0, 2}},
	{ID: "13", Label: "(1 3)", LaTeX: `(1\,3)`, Perm: Permutation{2, 1, 0}},
	{ID: "23", Label: "(2 3)", LaTeX: `(2\,3)`, Perm: Permutation{0, 2, 1}},
	{ID: "123", Label: "(1 2 3)", LaTeX: `(1\,2\,3)`, Perm: Permutation{1, 2, 0}},
	{ID: "132", Label: "(1 3 2)", LaTeX: `(1\,3\,2)`, Perm: Permutation{2, 0, 1}},
}

// S3 returns the six elements in table order. The slice is a fresh copy.
func S3() []Element {
	out := make([]Element, GroupOrder)
	copy(out, s3[:])

	return out
}

// At returns the i-th table entry.
func At(i int) (Element, error) {
	if i < 0 || i >= GroupOrder {
		return Element{}, errors.Wrapf(ErrOutOfRange, "At(%d)", i)
	}

	return s3[i], nil
}

// ByID returns the entry with the given ID.
func ByID(id string) (Element, error) {
	for _, e := range s3 {
		if e.ID == id {
			return e, nil
		}
	}

	return Element{}, errors.Wrapf(ErrUnknownID, "ByID(%q)", id)
}

// Lookup returns the table entry whose Perm equals p.
func Lookup(p Permutation) (Element, bool) {
	for _, e := range s3 {
		if e.Perm == p {
			return e, true
		}
	}

	return Element{}, false
}
