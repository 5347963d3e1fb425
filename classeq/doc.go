// SPDX-License-Identifier: MIT

// Package classeq computes the class equation |G| = Σ |conjugacy class| for
// the concrete groups of this module: S₃ and the dihedral groups D_n.
//
// Classes are found by brute-force conjugation g·x·g⁻¹ over the whole group,
// which is O(|G|²) and trivially fast for these sizes. Sizes are reported
// ascending, so S₃ reads "6 = 1 + 2 + 3" and D₄ reads "8 = 2 + 2 + 2 + 2"
// once the two central classes are merged into the center.
package classeq
