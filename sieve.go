package primestep

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hupe1980/primestep/internal/conv"
	"github.com/hupe1980/primestep/internal/resource"
	"github.com/hupe1980/primestep/internal/table"
)

// progressEvery is how many scanned candidates pass between progress records.
const progressEvery = 1 << 16

// Pair is a pair of primes separated by a gap.
// The zero Pair is the sentinel for "no pair in range".
type Pair struct {
	First  int64
	Second int64
}

// Found reports whether p is a real pair rather than the sentinel.
func (p Pair) Found() bool {
	return p != Pair{}
}

// String formats the pair as {first, second}.
func (p Pair) String() string {
	return fmt.Sprintf("{%d, %d}", p.First, p.Second)
}

// Sieve is an incrementally extensible sieve of Eratosthenes.
//
// The table starts empty and grows on demand; decided entries are never
// recomputed. A Sieve is safe for concurrent use.
type Sieve struct {
	mu       sync.RWMutex
	table    *table.Table
	rc       *resource.Controller
	reserved int64
	closed   bool
	opts     options
}

// New creates an empty sieve.
func New(optFns ...Option) *Sieve {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Sieve{
		table: table.New(),
		rc:    resource.NewController(resource.Config{MemoryLimitBytes: opts.memoryLimit}),
		opts:  opts,
	}
}

// Bound returns the largest value the table currently decides.
// An empty sieve returns 1.
func (s *Sieve) Bound() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boundLocked()
}

// Len returns the number of table entries.
func (s *Sieve) Len() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Len()
}

// MemoryUsage returns the bytes reserved for the table.
func (s *Sieve) MemoryUsage() int64 {
	return s.rc.MemoryUsage()
}

// Close releases the table and its memory reservation.
// Further operations return ErrClosed.
func (s *Sieve) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.rc.ReleaseMemory(s.reserved)
	s.reserved = 0
	s.table = table.New()
	s.closed = true
	return nil
}

func (s *Sieve) boundLocked() uint64 {
	return s.table.Len() + table.Offset - 1
}

// Extend ensures the table decides every integer in [2, bound].
//
// Bounds already covered are a cheap no-op. A bound above the configured
// maximum, or one whose table would exceed the memory limit, fails with
// ErrOutOfRange and leaves the table untouched.
func (s *Sieve) Extend(bound uint64) error {
	s.mu.RLock()
	covered, closed := s.boundLocked(), s.closed
	s.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if bound <= covered {
		return nil
	}

	start := time.Now()
	s.mu.Lock()
	from := s.boundLocked()
	entries, err := s.extendLocked(bound)
	s.mu.Unlock()

	if entries == 0 && err == nil {
		// Another caller got there first.
		return nil
	}
	elapsed := time.Since(start)
	s.opts.metricsCollector.RecordExtend(entries, elapsed, err)
	s.opts.logger.LogExtend(from, bound, elapsed, err)
	return err
}

func (s *Sieve) extendLocked(bound uint64) (uint64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	prev := s.boundLocked()
	if bound <= prev {
		return 0, nil
	}
	if bound > s.opts.maxBound {
		return 0, outOfRange("extend", bound, s.opts.maxBound, nil)
	}

	size := bound - table.Offset + 1
	if need := table.SegmentsFor(size) - s.table.Segments(); need > 0 {
		bytes := int64(need) * table.SegmentBytes
		if err := s.rc.AcquireMemory(bytes); err != nil {
			return 0, outOfRange("extend", bound, s.table.Capacity()+table.Offset-1, err)
		}
		s.reserved += bytes
	}

	oldSize := s.table.Len()
	s.table.Grow(size)
	s.mark(prev, bound)
	return size - oldSize, nil
}

// mark strikes composites in (prev, bound]. Every still-prime value up to
// sqrt(bound) seeds a stride, including primes found by earlier extensions,
// but writes never touch values at or below prev.
func (s *Sieve) mark(prev, bound uint64) {
	for i, ok := s.table.NextUnmarked(0); ok; i, ok = s.table.NextUnmarked(i + 1) {
		v := i.Value()
		if v > bound/v {
			return
		}
		first := v * v
		if first <= prev {
			first = (prev/v + 1) * v
		}
		s.table.Strike(table.IndexOf(first), v)
	}
}

// primeLocked reads the table. v must be within the covered bound.
func (s *Sieve) primeLocked(v int64) bool {
	if v < table.Offset {
		return false
	}
	return !s.table.Composite(table.IndexOf(uint64(v)))
}

// IsPrime reports whether p is prime, extending the table to p if needed.
// Values below 2 are not prime.
func (s *Sieve) IsPrime(p int64) (bool, error) {
	start := time.Now()
	ok, err := s.isPrime(p)
	s.opts.metricsCollector.RecordIsPrime(time.Since(start), err)
	return ok, err
}

func (s *Sieve) isPrime(p int64) (bool, error) {
	switch {
	case p < 2:
		return false, nil
	case p == 2:
		return true, nil
	}

	if err := s.Extend(uint64(p)); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, ErrClosed
	}
	return s.primeLocked(p), nil
}

// Step returns the first pair of primes (p, p+g) with low <= p, scanning p
// upward to high. With the default PartnerWithinBound policy p+g must not
// exceed high either.
//
// When no pair exists the zero Pair is returned with a nil error. Step fails
// only with ErrOutOfRange (or ErrClosed).
func (s *Sieve) Step(g, low, high int64) (Pair, error) {
	start := time.Now()
	p, err := s.step(g, low, high)
	s.opts.metricsCollector.RecordStep(p.Found(), time.Since(start), err)
	s.opts.logger.LogStep(g, low, high, p, err)
	return p, err
}

func (s *Sieve) step(g, low, high int64) (Pair, error) {
	if high < 2 || low > high {
		return Pair{}, nil
	}

	unbounded := s.opts.partnerPolicy == PartnerUnbounded
	limit := high
	if unbounded && g > 0 {
		var err error
		if limit, err = conv.AddInt64(high, g); err != nil {
			return Pair{}, outOfRange("step", uint64(high), uint64(math.MaxInt64-g), err)
		}
	}

	if err := s.Extend(uint64(limit)); err != nil {
		return Pair{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Pair{}, ErrClosed
	}

	for first, n := max(low, 2), 0; ; first++ {
		if !unbounded && g > high-first {
			// No later candidate can keep its partner in range.
			break
		}
		if s.primeLocked(first) && s.primeLocked(first+g) {
			return Pair{First: first, Second: first + g}, nil
		}
		if first == high {
			break
		}
		if n++; n%progressEvery == 0 {
			s.opts.logger.LogProgress("step", first, high)
		}
	}
	return Pair{}, nil
}
