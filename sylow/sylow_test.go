package sylow_test

import (
	"testing"

	"github.com/katalvlaran/lvgroup/sylow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyze_Table covers the standard classroom cases.
func TestAnalyze_Table(t *testing.T) {
	tests := []struct {
		order, p   int
		k, m       int
		candidates []int
		normal     bool
	}{
		{6, 3, 1, 2, []int{1}, true},
		{12, 3, 1, 4, []int{1, 4}, false},
		{15, 3, 1, 5, []int{1}, true},
		{15, 5, 1, 3, []int{1}, true},
		{20, 5, 1, 4, []int{1}, true},
		{24, 2, 3, 3, []int{1, 3}, false},
		{60, 5, 1, 12, []int{1, 6}, false},
		{8, 2, 3, 1, []int{1}, true},
	}
	for _, tc := range tests {
		a, err := sylow.Analyze(tc.order, tc.p)
		require.NoError(t, err, "order=%d p=%d", tc.order, tc.p)
		assert.Equal(t, tc.k, a.K, "k for %d,%d", tc.order, tc.p)
		assert.Equal(t, tc.m, a.M, "m for %d,%d", tc.order, tc.p)
		assert.Equal(t, tc.candidates, a.Candidates, "n_p for %d,%d", tc.order, tc.p)
		assert.Equal(t, tc.normal, a.Normal())
		assert.Equal(t, tc.order, a.SubgroupOrder()*a.M)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := sylow.Analyze(0, 2)
	assert.ErrorIs(t, err, sylow.ErrInvalidOrder)

	_, err = sylow.Analyze(12, 4)
	assert.ErrorIs(t, err, sylow.ErrNotPrime)

	_, err = sylow.Analyze(12, 1)
	assert.ErrorIs(t, err, sylow.ErrNotPrime)

	_, err = sylow.Analyze(12, 5)
	assert.ErrorIs(t, err, sylow.ErrNotDivisible)
}

func TestDivisors(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, sylow.Divisors(12))
	assert.Equal(t, []int{1}, sylow.Divisors(1))
	assert.Equal(t, []int{1, 7}, sylow.Divisors(7))
	assert.Equal(t, []int{1, 3, 9}, sylow.Divisors(9))
	assert.Nil(t, sylow.Divisors(0))
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97}
	for _, p := range primes {
		assert.True(t, sylow.IsPrime(p), "%d", p)
	}
	for _, n := range []int{-3, 0, 1, 4, 9, 15, 91} {
		assert.False(t, sylow.IsPrime(n), "%d", n)
	}
}
