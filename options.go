package primestep

import "math"

// PartnerPolicy decides whether Step may look past the upper bound for the
// second prime of a pair.
type PartnerPolicy int

const (
	// PartnerWithinBound requires both primes of a pair to lie in [low, high].
	PartnerWithinBound PartnerPolicy = iota

	// PartnerUnbounded only requires the first prime to lie in [low, high].
	// The second prime may exceed high, and the sieve grows to cover it.
	PartnerUnbounded
)

// String implements fmt.Stringer.
func (p PartnerPolicy) String() string {
	switch p {
	case PartnerWithinBound:
		return "within-bound"
	case PartnerUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// DefaultMaxBound is the largest bound a sieve accepts unless configured
// otherwise. It is the largest value a query can name.
const DefaultMaxBound uint64 = math.MaxInt64

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	maxBound         uint64
	memoryLimit      int64
	workers          int
	partnerPolicy    PartnerPolicy
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		maxBound:         DefaultMaxBound,
		workers:          1,
		partnerPolicy:    PartnerWithinBound,
	}
}

// Option configures a Sieve.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMaxBound caps the bound the sieve may be extended to.
// Requests beyond it fail with ErrOutOfRange. Values above DefaultMaxBound
// are clamped to it.
func WithMaxBound(bound uint64) Option {
	return func(o *options) {
		o.maxBound = min(bound, DefaultMaxBound)
	}
}

// WithMemoryLimit caps the memory the sieve table may reserve, in bytes.
// Growth that would exceed the limit fails with ErrOutOfRange wrapping
// ErrMemoryLimitExceeded, leaving the table as it was.
//
// If bytes <= 0, memory is tracked but not limited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = max(bytes, 0)
	}
}

// WithWorkers sets how many queries StepBatch runs at once.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithPartnerPolicy selects how Step treats a second prime above the
// upper bound. The default is PartnerWithinBound.
func WithPartnerPolicy(p PartnerPolicy) Option {
	return func(o *options) {
		o.partnerPolicy = p
	}
}
