package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrimeTrialDivision(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		assert.True(t, IsPrimeTrialDivision(p), "%d", p)
	}

	composites := []int64{-7, 0, 1, 4, 9, 15, 91, 7917}
	for _, c := range composites {
		assert.False(t, IsPrimeTrialDivision(c), "%d", c)
	}
}

func TestBruteForceStep(t *testing.T) {
	assert.Equal(t, [2]int64{101, 103}, BruteForceStep(2, 100, 110))
	assert.Equal(t, [2]int64{3, 5}, BruteForceStep(2, 2, 50))
	assert.Equal(t, [2]int64{}, BruteForceStep(2, 108, 110))
}

func TestPrimesUpTo(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19}, PrimesUpTo(20))
	assert.Empty(t, PrimesUpTo(1))
}

func TestRNG(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())

	for range 100 {
		lo, hi := rng.Range(10, 20)
		assert.LessOrEqual(t, lo, hi)
		assert.GreaterOrEqual(t, lo, int64(10))
		assert.Less(t, hi, int64(20))

		g := rng.Gap(5)
		assert.Zero(t, g%2)
		assert.GreaterOrEqual(t, g, int64(2))
		assert.LessOrEqual(t, g, int64(10))
	}
}
