package primestep

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordExtend is called after each extension that had to grow the table.
	// entries is the number of entries added (0 on failure).
	RecordExtend(entries uint64, duration time.Duration, err error)

	// RecordIsPrime is called after each primality query.
	RecordIsPrime(duration time.Duration, err error)

	// RecordStep is called after each gapped-pair search.
	// found is false when the sentinel pair was returned.
	RecordStep(found bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExtend(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordIsPrime(time.Duration, error)        {}
func (NoopMetricsCollector) RecordStep(bool, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExtendCount      atomic.Int64
	ExtendErrors     atomic.Int64
	ExtendEntries    atomic.Uint64
	ExtendTotalNanos atomic.Int64
	IsPrimeCount     atomic.Int64
	IsPrimeErrors    atomic.Int64
	StepCount        atomic.Int64
	StepErrors       atomic.Int64
	StepFound        atomic.Int64
	StepTotalNanos   atomic.Int64
}

// RecordExtend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExtend(entries uint64, duration time.Duration, err error) {
	b.ExtendCount.Add(1)
	b.ExtendEntries.Add(entries)
	b.ExtendTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExtendErrors.Add(1)
	}
}

// RecordIsPrime implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIsPrime(_ time.Duration, err error) {
	b.IsPrimeCount.Add(1)
	if err != nil {
		b.IsPrimeErrors.Add(1)
	}
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(found bool, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
	}
	if found {
		b.StepFound.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ExtendCount:    b.ExtendCount.Load(),
		ExtendErrors:   b.ExtendErrors.Load(),
		ExtendEntries:  b.ExtendEntries.Load(),
		ExtendAvgNanos: avg(b.ExtendTotalNanos.Load(), b.ExtendCount.Load()),
		IsPrimeCount:   b.IsPrimeCount.Load(),
		IsPrimeErrors:  b.IsPrimeErrors.Load(),
		StepCount:      b.StepCount.Load(),
		StepErrors:     b.StepErrors.Load(),
		StepFound:      b.StepFound.Load(),
		StepAvgNanos:   avg(b.StepTotalNanos.Load(), b.StepCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	ExtendCount    int64
	ExtendErrors   int64
	ExtendEntries  uint64
	ExtendAvgNanos int64
	IsPrimeCount   int64
	IsPrimeErrors  int64
	StepCount      int64
	StepErrors     int64
	StepFound      int64
	StepAvgNanos   int64
}
