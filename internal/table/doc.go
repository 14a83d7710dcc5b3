// Package table provides the growable composite table backing the sieve.
//
// Architecture:
//   - Segmented design: 8KB segments (1024 uint64 words = 65536 entries each)
//   - Append-only growth: existing segments are never copied or reallocated
//   - Entry for value v lives at index v-Offset; a set bit marks a composite
//
// A freshly grown region reads as all-prime, which is the starting state the
// marking pass expects. Bits are only ever set, never cleared.
//
// Table is not safe for concurrent use; callers guard it with their own lock.
package table
