// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when moving between signed query values and unsigned sieve bounds.
//
// For conversions that are provably safe by domain constraints (e.g., values
// already checked against the sieve bound), use direct type casts instead.
package conv
