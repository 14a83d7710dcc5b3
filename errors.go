package primestep

import (
	"errors"
	"fmt"

	"github.com/hupe1980/primestep/internal/resource"
)

var (
	// ErrOutOfRange is returned when a requested bound cannot be sieved.
	// All range failures wrap it, so errors.Is(err, ErrOutOfRange) is the
	// check callers should use.
	ErrOutOfRange = errors.New("out of range")

	// ErrClosed is returned by operations on a closed Sieve.
	ErrClosed = errors.New("sieve closed")
)

// OutOfRangeError reports a bound that exceeds what the sieve can cover.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type OutOfRangeError struct {
	Op    string // operation that failed: "extend" or "step"
	Bound uint64 // requested bound
	Limit uint64 // largest bound that would have been accepted
	cause error
}

func (e *OutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: bound %d exceeds limit %d", e.Op, e.Bound, e.Limit)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *OutOfRangeError) Unwrap() error { return e.cause }

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// ErrMemoryLimitExceeded is wrapped by OutOfRangeError when table growth
// would exceed the limit set with WithMemoryLimit.
var ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

func outOfRange(op string, bound, limit uint64, cause error) error {
	return &OutOfRangeError{Op: op, Bound: bound, Limit: limit, cause: cause}
}
