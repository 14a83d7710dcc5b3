// Package resource caps the memory a sieve may reserve for its table.
//
// Memory tracking uses a weighted semaphore for hard limits and an atomic
// counter for usage. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(8192); err != nil {
//	    // ErrMemoryLimitExceeded - caller reports the bound as out of range
//	}
//
// A sieve releases its whole reservation when it is closed.
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
