package testutil

import (
	"math/rand"
	"sync"
)

// IsPrimeTrialDivision reports whether v is prime by trial division.
func IsPrimeTrialDivision(v int64) bool {
	if v < 2 {
		return false
	}
	if v%2 == 0 {
		return v == 2
	}
	for d := int64(3); d <= v/d; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// BruteForceStep returns the first (p, p+g) with low <= p and p+g <= high
// where both are prime, or (0, 0).
func BruteForceStep(g, low, high int64) [2]int64 {
	for p := max(low, 2); p <= high && p+g <= high; p++ {
		if IsPrimeTrialDivision(p) && IsPrimeTrialDivision(p+g) {
			return [2]int64{p, p + g}
		}
	}
	return [2]int64{}
}

// PrimesUpTo lists the primes in [2, n] by trial division.
func PrimesUpTo(n int64) []int64 {
	var out []int64
	for v := int64(2); v <= n; v++ {
		if IsPrimeTrialDivision(v) {
			out = append(out, v)
		}
	}
	return out
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Int63n returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Range returns lo <= hi, both drawn from [minVal, maxVal).
func (r *RNG) Range(minVal, maxVal int64) (int64, int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := minVal + r.rand.Int63n(maxVal-minVal)
	b := minVal + r.rand.Int63n(maxVal-minVal)
	return min(a, b), max(a, b)
}

// Gap returns a positive even gap in [2, 2*maxHalf].
func (r *RNG) Gap(maxHalf int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return 2 * (1 + r.rand.Int63n(maxHalf))
}
