// Package testutil provides testing utilities for primestep.
//
// This package is intended for use in tests and benchmarks only.
// It provides a trial-division primality oracle and helpers for
// generating random query bounds.
//
// # Ground Truth
//
//	ok := testutil.IsPrimeTrialDivision(7919)
//	p := testutil.BruteForceStep(2, 100, 110) // {101, 103}
//
// # Random Bounds
//
//	rng := testutil.NewRNG(seed)
//	lo, hi := rng.Range(1, 10_000)
package testutil
