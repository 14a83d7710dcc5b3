// Package primestep finds pairs of primes separated by a fixed gap.
//
// The heart of the package is Sieve, an incrementally extensible sieve of
// Eratosthenes. Its table starts empty and grows on demand: every query
// extends it just far enough, and entries decided by an earlier extension are
// never recomputed.
//
// # Quick Start
//
//	s := primestep.New()
//	defer s.Close()
//
//	p, err := s.Step(2, 100, 110) // {101, 103}
//	ok, err := s.IsPrime(7919)    // true
//
// A zero Pair means no pair exists in the range; it is not an error.
//
// # Bounds
//
// Both primes of a pair must lie in [low, high] by default. Use
// WithPartnerPolicy(PartnerUnbounded) to let the second prime exceed high.
//
// Requests that the table cannot cover fail with an error matching
// ErrOutOfRange:
//
//	s := primestep.New(primestep.WithMaxBound(1_000_000))
//	if err := s.Extend(2_000_000); errors.Is(err, primestep.ErrOutOfRange) {
//	    // table unchanged
//	}
//
// # Concurrency
//
// A Sieve is safe for concurrent use. StepBatch answers many queries at once
// against one shared table:
//
//	s := primestep.New(primestep.WithWorkers(4))
//	pairs, err := s.StepBatch(ctx, []primestep.Query{{Gap: 2, Low: 100, High: 110}})
package primestep
