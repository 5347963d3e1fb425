package cubic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgroup/cplx"
	"github.com/katalvlaran/lvgroup/cubic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// matchAsSet reports whether got is a permutation of want within eps.
func matchAsSet(t *testing.T, want []cplx.Complex, got cubic.Roots, eps float64) {
	t.Helper()
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && cplx.ApproxEqual(w, g, eps) {
				used[i] = true
				found = true
				break
			}
		}
		assert.True(t, found, "root %v not found in %v", w, got)
	}
}

// TestSolveCubic_UnityRoots solves x³ − 1 = 0.
func TestSolveCubic_UnityRoots(t *testing.T) {
	roots := cubic.SolveCubic(0, 0, -1)

	for _, r := range roots {
		assert.InDelta(t, 1.0, cplx.Abs(r), tol, "every cube root of unity has |z|=1")
	}
	matchAsSet(t, []cplx.Complex{
		cplx.One,
		cplx.FromAngle(2 * math.Pi / 3),
		cplx.FromAngle(4 * math.Pi / 3),
	}, roots, tol)
}

// TestSolveCubic_GoldenOrder pins the Sequential iteration path: seed i
// always lands on the same root.
func TestSolveCubic_GoldenOrder(t *testing.T) {
	tests := []struct {
		name  string
		a     float64
		b     float64
		c     float64
		roots cubic.Roots
	}{
		{
			name: "x^3-1",
			a:    0, b: 0, c: -1,
			roots: cubic.Roots{
				cplx.New(1, 0),
				cplx.New(-0.5, 0.8660254037844386),
				cplx.New(-0.5, -0.8660254037844387),
			},
		},
		{
			name: "(x-1)(x-2)(x-3)",
			a:    -6, b: 11, c: -6,
			roots: cubic.Roots{cplx.New(2, 0), cplx.New(3, 0), cplx.New(1, 0)},
		},
		{
			name: "x^3-2x",
			a:    0, b: -2, c: 0,
			roots: cubic.Roots{cplx.New(math.Sqrt2, 0), cplx.New(-math.Sqrt2, 0), cplx.Zero},
		},
		{
			name: "x^3+x^2+x+1",
			a:    1, b: 1, c: 1,
			roots: cubic.Roots{cplx.New(0, 1), cplx.New(-1, 0), cplx.New(0, -1)},
		},
		{
			name: "x^3+x+1",
			a:    0, b: 1, c: 1,
			roots: cubic.Roots{
				cplx.New(0.34116390191400964, 1.161541399997252),
				cplx.New(-0.6823278038280193, 0),
				cplx.New(0.34116390191400964, -1.161541399997252),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cubic.SolveCubic(tc.a, tc.b, tc.c)
			for i := range got {
				assert.True(t, cplx.ApproxEqual(tc.roots[i], got[i], 1e-12),
					"root[%d]: want %v, got %v", i, tc.roots[i], got[i])
			}
		})
	}
}

// TestSolveCubic_Idempotent checks bit-exact repeatability.
func TestSolveCubic_Idempotent(t *testing.T) {
	first := cubic.SolveCubic(0.5, -3.25, 1.75)
	second := cubic.SolveCubic(0.5, -3.25, 1.75)
	assert.Equal(t, first, second)
}

// TestSolveCubic_Residuals checks that every returned root satisfies f(z) ≈ 0.
func TestSolveCubic_Residuals(t *testing.T) {
	cases := []cubic.Coefficients{
		{A: 0, B: 0, C: -1},
		{A: -6, B: 11, C: -6},
		{A: 2, B: -5, C: 3.5},
		{A: 0, B: 1, C: 1},
		{A: -1.5, B: 0.25, C: 4},
	}
	for _, c := range cases {
		roots := cubic.SolveCubic(c.A, c.B, c.C)
		assert.Less(t, cubic.MaxResidual(c, roots), 1e-9, "coeffs %+v → %v", c, roots)
	}
}

// TestSolveCubic_RepeatedRootNoFailure documents that repeated roots are
// accepted: the result stays finite and close to the double root.
func TestSolveCubic_RepeatedRootNoFailure(t *testing.T) {
	// (x−1)²(x+2) = x³ − 3x + 2
	roots := cubic.SolveCubic(0, -3, 2)
	for _, r := range roots {
		assert.True(t, cplx.IsFinite(r), "root %v must be finite", r)
	}
	assert.Less(t, cubic.MaxResidual(cubic.Coefficients{A: 0, B: -3, C: 2}, roots), 1e-6)
}

// TestSolve_DefaultsMatchSolveCubic ensures the option-free path matches SolveCubic.
func TestSolve_DefaultsMatchSolveCubic(t *testing.T) {
	got, err := cubic.Solve(cubic.Coefficients{A: 1, B: -4, C: 2})
	require.NoError(t, err)
	assert.Equal(t, cubic.SolveCubic(1, -4, 2), got)
}

// TestSolve_NonFinite verifies coefficient validation.
func TestSolve_NonFinite(t *testing.T) {
	for _, c := range []cubic.Coefficients{
		{A: math.NaN()},
		{B: math.Inf(1)},
		{C: math.Inf(-1)},
	} {
		_, err := cubic.Solve(c)
		assert.ErrorIs(t, err, cubic.ErrNonFiniteCoefficient, "coeffs %+v", c)
	}
}

// TestSolve_Simultaneous converges to the same set of roots.
func TestSolve_Simultaneous(t *testing.T) {
	seq := cubic.SolveCubic(-6, 11, -6)
	sim, err := cubic.Solve(cubic.Coefficients{A: -6, B: 11, C: -6}, cubic.WithUpdate(cubic.Simultaneous))
	require.NoError(t, err)
	matchAsSet(t, seq[:], sim, 1e-9)
}

// TestSolve_ToleranceEarlyExit shows that a tolerance does not change the
// result beyond that tolerance while allowing fewer iterations.
func TestSolve_ToleranceEarlyExit(t *testing.T) {
	coeffs := cubic.Coefficients{A: 0, B: 0, C: -1}
	ref := cubic.SolveCubic(0, 0, -1)

	got, err := cubic.Solve(coeffs, cubic.WithIterations(500), cubic.WithTolerance(1e-13))
	require.NoError(t, err)
	for i := range got {
		assert.True(t, cplx.ApproxEqual(ref[i], got[i], 1e-12))
	}
}

// TestSolve_IterationBudget shows that one sweep is not enough to converge.
func TestSolve_IterationBudget(t *testing.T) {
	coeffs := cubic.Coefficients{A: -6, B: 11, C: -6}
	one, err := cubic.Solve(coeffs, cubic.WithIterations(1))
	require.NoError(t, err)
	assert.Greater(t, cubic.MaxResidual(coeffs, one), 1e-3)
}

// TestSolve_CustomSeeds converges from other distinct seeds too.
func TestSolve_CustomSeeds(t *testing.T) {
	coeffs := cubic.Coefficients{A: -6, B: 11, C: -6}
	got, err := cubic.Solve(coeffs,
		cubic.WithSeeds(cplx.New(0.1, 0.2), cplx.New(-1, 1), cplx.New(2, -0.5)),
		cubic.WithIterations(100),
	)
	require.NoError(t, err)
	matchAsSet(t, []cplx.Complex{cplx.Real(1), cplx.Real(2), cplx.Real(3)}, got, 1e-9)
}

// TestOptions_Panic covers option validation.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { cubic.WithIterations(0) })
	assert.Panics(t, func() { cubic.WithTolerance(-1) })
	assert.Panics(t, func() { cubic.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { cubic.WithUpdate(cubic.UpdateMode(7)) })
	assert.Panics(t, func() { cubic.WithSeeds(cplx.One, cplx.One, cplx.Zero) })
	assert.Panics(t, func() { cubic.WithSeeds(cplx.New(math.NaN(), 0), cplx.One, cplx.Zero) })
}

func TestEval(t *testing.T) {
	c := cubic.Coefficients{A: -6, B: 11, C: -6}
	assert.Equal(t, cplx.Zero, c.Eval(cplx.Real(1)))
	assert.Equal(t, cplx.Real(-6), c.Eval(cplx.Zero))
	// i³ − 6i² + 11i − 6 = 0 + 5i... = (6 − 6) + (−1 + 11)i
	assert.Equal(t, cplx.New(0, 10), c.Eval(cplx.New(0, 1)))
}

func TestUpdateMode_Parse(t *testing.T) {
	m, ok := cubic.ParseUpdateMode("simultaneous")
	assert.True(t, ok)
	assert.Equal(t, cubic.Simultaneous, m)
	assert.Equal(t, "simultaneous", m.String())

	m, ok = cubic.ParseUpdateMode("")
	assert.True(t, ok)
	assert.Equal(t, cubic.Sequential, m)

	_, ok = cubic.ParseUpdateMode("jacobi")
	assert.False(t, ok)
}

func TestDefaultSeeds_Distinct(t *testing.T) {
	s := cubic.DefaultSeeds()
	assert.NotEqual(t, s[0], s[1])
	assert.NotEqual(t, s[0], s[2])
	assert.NotEqual(t, s[1], s[2])
	s[0] = cplx.Zero
	assert.Equal(t, cplx.New(0.4, 0.9), cubic.DefaultSeeds()[0], "DefaultSeeds returns a copy")
}
