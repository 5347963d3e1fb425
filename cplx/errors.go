// SPDX-License-Identifier: MIT
// Package: lvgroup/cplx
//
// errors.go — sentinel errors for complex arithmetic.
//
// Callers MUST branch with errors.Is; messages are stable.

package cplx

import "github.com/cockroachdb/errors"

// ErrDivisionByZero is returned by Div when the divisor has zero magnitude
// (Re² + Im² == 0).
var ErrDivisionByZero = errors.New("cplx: division by zero")
