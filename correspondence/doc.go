// SPDX-License-Identifier: MIT

// Package correspondence checks the correspondence (fourth isomorphism)
// theorem on the dihedral groups D_n.
//
// 🚀 What does it compute?
//
//	For a normal subgroup N ⊴ D_n, the subgroups H with N ≤ H ≤ D_n are in
//	inclusion-preserving bijection with the subgroups of D_n/N via
//	H ↦ H/N, and |H/N| = |H| / |N|.
//
// ✨ Key features:
//   - Subgroup lattice of D_n by closure under dihedral.Compose.
//   - Normality and center checks by brute-force conjugation.
//   - Explicit cosets of G/N and the image of every H in the quotient.
//   - Covering edges of both lattices, for Hasse diagrams.
//
// ⚙️ Usage:
//
//	lat, err := correspondence.Dihedral(4, "r2") // N = ⟨r²⟩ = Z(D₄)
//	if errors.Is(err, correspondence.ErrNotNormal) { ... }
//	for _, p := range lat.Pairs {
//		fmt.Println(p.Subgroup.Label(), p.Subgroup.Order(), "→", p.ImageOrder())
//	}
//
// Every subgroup of D_n is generated by at most two elements, so the lattice
// is the set of closures of all element pairs: O(n³) work, fine for the
// polygon sizes a presentation uses.
package correspondence
