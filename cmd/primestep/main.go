// Command primestep searches for pairs of primes separated by a fixed gap.
//
// Usage:
//
//	primestep step 2 100 110          # (2, 100, 110) {101, 103}
//	primestep isprime 7919 7917
//	primestep primes --count 20 --max 100
//	primestep selftest
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
