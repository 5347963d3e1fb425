// SPDX-License-Identifier: MIT

// Package dihedral generates the dihedral group D_n of order 2n, the
// symmetries of a regular n-gon, acting on vertex indices {0,…,n−1}.
//
// 🚀 What is D_n?
//
//	n rotations r^k : i ↦ (i + k) mod n
//	n reflections sr^k : i ↦ (n − ((i + k) mod n)) mod n
//
//	s is the reflection across the axis through vertex 0, so sr^k first
//	rotates by k and then reflects.
//
// ✨ Key features:
//   - Elements are plain tagged values {Kind, K, N}; the action is dispatched
//     on the tag, so elements compare with == and serialize cleanly.
//   - Deterministic order: r^0 … r^{n−1}, then s … sr^{n−1}.
//   - Orbit / stabilizer helpers for the orbit–stabilizer theorem.
//   - Closed-form composition and inverses.
//   - Polygon geometry (vertex positions, ring edges) for renderers.
//
// ⚙️ Usage:
//
//	els, err := dihedral.Generate(6)
//	if errors.Is(err, dihedral.ErrTooFewVertices) { ... }
//	stab := dihedral.Stabilizer(els, 0) // [e, s]
//
// Generate rejects n < 3 with ErrTooFewVertices.
package dihedral
