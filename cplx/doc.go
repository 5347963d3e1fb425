// SPDX-License-Identifier: MIT

// Package cplx is the complex-number layer underneath the cubic solver and
// the Lagrange resolvent.
//
// 🚀 What is cplx?
//
//	A tiny value type Complex{Re, Im} with explicit, allocation-free
//	arithmetic. Every operation returns a new value; nothing is mutated.
//
// ✨ Key features:
//   - Add, Sub, Mul, Cube are total.
//   - Div reports ErrDivisionByZero instead of propagating NaN.
//   - FromAngle builds unit vectors (roots of unity).
//   - Interop with complex128 / math/cmplx when callers need it.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgroup/cplx"
//
//	w := cplx.FromAngle(2 * math.Pi / 3)
//	q, err := cplx.Div(cplx.New(1, 2), w)
//	if errors.Is(err, cplx.ErrDivisionByZero) {
//	  // divisor had zero magnitude
//	}
//
// Performance: every function is O(1) time and O(1) space.
package cplx
