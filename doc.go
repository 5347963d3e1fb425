// Package lvgroup is a small numerical and group-theoretic engine for
// working through Galois theory by hand: cubic roots, Lagrange resolvents
// and the concrete finite groups that act on them.
//
// 🚀 What is inside?
//
//	• cplx/      — immutable complex values, division that reports zero divisors
//	• cubic/     — Durand–Kerner roots of x³ + a·x² + b·x + c, with tunable options
//	• perm/      — permutations of three items and the fixed S₃ table
//	• dihedral/  — D_n as tagged rotations/reflections, orbits, stabilizers, n-gon geometry
//	• resolvent/ — (x₁ + ω·x₂ + ω²·x₃)³ under every element of S₃
//	• classeq/   — conjugacy classes, center and class equation of S₃ and D_n
//	• correspondence/ — subgroups of D_n above N ⊴ D_n matched with those of D_n/N
//	• sylow/     — admissible Sylow counts n_p for |G| = pᵏ·m
//
// ✨ Guarantees
//
//   - Deterministic – the same inputs give bit-identical outputs
//   - Pure – no globals mutated after init, no I/O, no logging
//   - Explicit errors – sentinels per package, wrapped with context
//
// The lvgroup command (cmd/lvgroup) renders all of the above as tables,
// JSON or YAML.
//
// Quick example:
//
//	roots := cubic.SolveCubic(0, 1, 1)            // x³ + x + 1
//	y := resolvent.Evaluate(roots, perm.Identity) // ≈ 0.9655
//
//	go get github.com/katalvlaran/lvgroup
package lvgroup
