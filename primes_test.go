package primestep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primestep/testutil"
)

func TestSieve_Primes(t *testing.T) {
	s := New()

	t.Run("first twenty", func(t *testing.T) {
		got, err := s.Primes(20, 100, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, testutil.PrimesUpTo(71), got)
	})

	t.Run("stops at limit", func(t *testing.T) {
		got, err := s.Primes(27, 101, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, testutil.PrimesUpTo(101), got)
		assert.Len(t, got, 26)
	})

	t.Run("window", func(t *testing.T) {
		// The window lies past the first 27 primes, so nothing is shown.
		got, err := s.Primes(27, 100000, 29999, 30050)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = s.Primes(4000, 100000, 29999, 30050)
		require.NoError(t, err)
		assert.Equal(t, []int64{30011, 30013, 30029, 30047}, got)
	})

	t.Run("degenerate", func(t *testing.T) {
		got, err := s.Primes(0, 100, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = s.Primes(10, 1, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSieve_PrimesOutOfRange(t *testing.T) {
	s := New(WithMaxBound(100))
	_, err := s.Primes(10, 200, 0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSieve_PrimesIn(t *testing.T) {
	s := New()

	bm, err := s.PrimesIn(0, 30)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, bm.ToArray())

	bm, err = s.PrimesIn(100, 110)
	require.NoError(t, err)
	assert.Equal(t, []uint64{101, 103, 107, 109}, bm.ToArray())

	bm, err = s.PrimesIn(50, 10)
	require.NoError(t, err)
	assert.True(t, bm.IsEmpty())
}

func TestSieve_CountPrimes(t *testing.T) {
	s := New()

	n, err := s.CountPrimes(0, 100000)
	require.NoError(t, err)
	assert.Equal(t, 9592, n)

	n, err = s.CountPrimes(100, 110)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = s.CountPrimes(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.CountPrimes(10, 5)
	require.NoError(t, err)
	assert.Zero(t, n)
}
