// SPDX-License-Identifier: MIT

// Package cubic finds the three complex roots of a monic cubic
// x³ + a·x² + b·x + c with the Durand–Kerner (Weierstrass) iteration.
//
// 🚀 What is Durand–Kerner?
//
//	All roots are refined at once. Each guess zᵢ is corrected by
//
//	  zᵢ ← zᵢ − f(zᵢ) / Π_{j≠i} (zᵢ − zⱼ)
//
//	starting from distinct, non-collinear seeds. The method works over ℂ even
//	when every root is real.
//
// ✨ Key features:
//   - Fixed seeds (0.4+0.9i, −0.9+0.4i, 0.5−0.8i) and 20 iterations by default:
//     same inputs ⇒ bit-identical roots.
//   - Sequential (Gauss–Seidel) update order by default; Simultaneous on request.
//   - Optional early exit on a correction tolerance (off by default).
//   - Never fails on finite input; repeated roots converge slowly, not an error.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgroup/cubic"
//
//	roots := cubic.SolveCubic(0, 0, -1) // cube roots of unity
//
//	roots, err := cubic.Solve(cubic.Coefficients{A: -6, B: 11, C: -6},
//	  cubic.WithUpdate(cubic.Simultaneous),
//	  cubic.WithTolerance(1e-14),
//	)
//
// Root order follows the seeds and the iteration path; it is stable for
// identical inputs but carries no canonical meaning.
//
// Performance: O(iterations) time, O(1) memory.
package cubic
