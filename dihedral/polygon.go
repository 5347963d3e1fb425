// SPDX-License-Identifier: MIT
// Package: lvgroup/dihedral
//
// polygon.go — regular n-gon geometry for renderers.
//
// Vertex 0 sits at the top (angle −π/2 in screen coordinates) and indices
// advance clockwise, matching the reflection axis of s through vertex 0.

package dihedral

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Point is a polygon vertex position. Label is the 1-based display number.
type Point struct {
	X     float64
	Y     float64
	Label int
}

// Vertices returns the n vertex positions on a circle of the given radius.
func Vertices(n int, radius float64) ([]Point, error) {
	if n < MinVertices {
		return nil, errors.Wrapf(ErrTooFewVertices, "Vertices: n=%d < min=%d", n, MinVertices)
	}

	const offset = -math.Pi / 2
	pts := make([]Point, n)
	for i := range pts {
		theta := offset + float64(i)*2*math.Pi/float64(n)
		pts[i] = Point{
			X:     radius * math.Cos(theta),
			Y:     radius * math.Sin(theta),
			Label: i + 1,
		}
	}

	return pts, nil
}

// Edges returns the ring edges of C_n in stable order i → (i+1) mod n.
func Edges(n int) ([][2]int, error) {
	if n < MinVertices {
		return nil, errors.Wrapf(ErrTooFewVertices, "Edges: n=%d < min=%d", n, MinVertices)
	}

	out := make([][2]int, n)
	for i := range out {
		out[i] = [2]int{i, (i + 1) % n}
	}

	return out, nil
}

// IsSymmetry reports whether e maps every edge of the n-gon onto an edge,
// i.e. whether e is an automorphism of the cycle graph C_{e.N}.
func IsSymmetry(e Element) bool {
	edges, err := Edges(e.N)
	if err != nil {
		return false
	}

	n := e.N
	for _, uv := range edges {
		a, b := e.Act(uv[0]), e.Act(uv[1])
		if mod(a-b, n) != 1 && mod(b-a, n) != 1 {
			return false
		}
	}

	return true
}
