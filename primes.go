package primestep

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/primestep/internal/table"
)

// Primes walks the primes from 2 upward, stopping after count primes or past
// limit, whichever comes first. Only primes p with first <= p and
// (p < last or last == 0) are returned, but every prime walked counts
// toward count.
func (s *Sieve) Primes(count int, limit uint64, first, last int64) ([]int64, error) {
	if count <= 0 || limit < table.Offset {
		return nil, nil
	}
	if err := s.Extend(limit); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	var out []int64
	walked := 0
	for i, ok := s.table.NextUnmarked(0); ok && walked < count; i, ok = s.table.NextUnmarked(i + 1) {
		v := i.Value()
		if v > limit {
			break
		}
		// v <= limit <= DefaultMaxBound, so it fits in int64.
		p := int64(v)
		if p >= first && (last == 0 || p < last) {
			out = append(out, p)
		}
		walked++
	}
	return out, nil
}

// PrimesIn returns every prime in [lo, hi] as a bitmap.
func (s *Sieve) PrimesIn(lo, hi uint64) (*roaring64.Bitmap, error) {
	bm := roaring64.New()
	lo = max(lo, table.Offset)
	if hi < lo {
		return bm, nil
	}
	if err := s.Extend(hi); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	for i, ok := s.table.NextUnmarked(table.IndexOf(lo)); ok; i, ok = s.table.NextUnmarked(i + 1) {
		v := i.Value()
		if v > hi {
			break
		}
		bm.Add(v)
	}
	return bm, nil
}

// CountPrimes returns the number of primes in [lo, hi].
func (s *Sieve) CountPrimes(lo, hi uint64) (int, error) {
	lo = max(lo, table.Offset)
	if hi < lo {
		return 0, nil
	}
	if err := s.Extend(hi); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.table.CountUnmarked(table.IndexOf(lo), table.IndexOf(hi)+1), nil
}
