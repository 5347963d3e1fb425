// SPDX-License-Identifier: MIT
// Package: lvgroup/cplx
//
// complex.go — Complex value type and field operations.
//
// Contract:
//   • Complex is an immutable value; operations never alias their inputs.
//   • Add/Sub/Mul/Cube are total. Div fails only on a zero-magnitude divisor.
//   • Cube is computed as (z·z)·z so results match two Mul calls bit for bit.

package cplx

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Complex is a complex number with float64 real and imaginary parts.
type Complex struct {
	Re float64
	Im float64
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Complex{}
	One  = Complex{Re: 1}
)

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// Real returns x + 0·i.
func Real(x float64) Complex { return Complex{Re: x} }

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a − b.
func Sub(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns a · b.
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b.
//
// The quotient is formed with the textbook formula
//
//	(a·conj(b)) / |b|²
//
// and fails with ErrDivisionByZero when |b|² is exactly zero.
// Complexity: O(1).
func Div(a, b Complex) (Complex, error) {
	denom := b.Re*b.Re + b.Im*b.Im
	if denom == 0 {
		return Complex{}, errors.Wrapf(ErrDivisionByZero, "Div(%s, %s)", a, b)
	}

	return Complex{
		Re: (a.Re*b.Re + a.Im*b.Im) / denom,
		Im: (a.Im*b.Re - a.Re*b.Im) / denom,
	}, nil
}

// MustDiv is like Div but panics on a zero divisor.
// Use it only where the divisor is known to be non-zero.
func MustDiv(a, b Complex) Complex {
	q, err := Div(a, b)
	if err != nil {
		panic(err)
	}

	return q
}

// Abs returns the magnitude |z| = √(Re² + Im²). It is always ≥ 0.
func Abs(z Complex) float64 { return math.Sqrt(z.Re*z.Re + z.Im*z.Im) }

// Arg returns the principal argument of z in (−π, π].
func Arg(z Complex) float64 { return math.Atan2(z.Im, z.Re) }

// FromAngle returns the unit complex number cos θ + i·sin θ.
func FromAngle(theta float64) Complex {
	return Complex{Re: math.Cos(theta), Im: math.Sin(theta)}
}

// Cube returns z³ via two multiplications.
func Cube(z Complex) Complex {
	z2 := Mul(z, z)

	return Mul(z2, z)
}

// Conj returns the complex conjugate of z.
func Conj(z Complex) Complex { return Complex{Re: z.Re, Im: -z.Im} }

// Neg returns −z.
func Neg(z Complex) Complex { return Complex{Re: -z.Re, Im: -z.Im} }

// Scale returns s·z for a real scalar s.
func Scale(s float64, z Complex) Complex { return Complex{Re: s * z.Re, Im: s * z.Im} }

// IsFinite reports whether both parts are neither NaN nor ±Inf.
func IsFinite(z Complex) bool {
	return !math.IsNaN(z.Re) && !math.IsNaN(z.Im) &&
		!math.IsInf(z.Re, 0) && !math.IsInf(z.Im, 0)
}

// ApproxEqual reports whether |a − b| ≤ eps.
func ApproxEqual(a, b Complex, eps float64) bool {
	return Abs(Sub(a, b)) <= eps
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Complex128 converts z to the builtin complex128 for use with math/cmplx.
func (z Complex) Complex128() complex128 { return complex(z.Re, z.Im) }

// String formats z as "a+bi" / "a-bi" using the shortest exact decimal form.
func (z Complex) String() string {
	re := strconv.FormatFloat(z.Re, 'g', -1, 64)
	im := strconv.FormatFloat(math.Abs(z.Im), 'g', -1, 64)
	sign := "+"
	if math.Signbit(z.Im) {
		sign = "-"
	}

	return re + sign + im + "i"
}
