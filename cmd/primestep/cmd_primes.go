package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// primesPerLine matches the listing layout of the self test.
const primesPerLine = 10

func newPrimesCmd(st *cliState) *cobra.Command {
	var (
		count int
		limit uint64
		first int64
		last  int64
	)

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List primes from 2 upward",
		Long: `Walk the first --count primes up to --max and print those in
[--first, --last). A --last of 0 leaves the window open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			primes, err := st.sieve.Primes(count, limit, first, last)
			if err != nil {
				return err
			}
			writePrimes(cmd.OutOrStdout(), primes)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&count, "count", 20, "number of primes to walk")
	f.Uint64Var(&limit, "max", 100, "sieve bound")
	f.Int64Var(&first, "first", 0, "smallest prime to print")
	f.Int64Var(&last, "last", 0, "print primes below this value (0 = no limit)")

	return cmd
}

func newCountCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "count LOW HIGH",
		Short: "Count primes in [LOW, HIGH]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid LOW %q: %w", args[0], err)
			}
			hi, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid HIGH %q: %w", args[1], err)
			}

			bm, err := st.sieve.PrimesIn(lo, hi)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "primes in [%d, %d]: %d\n", lo, hi, bm.GetCardinality())
			if !bm.IsEmpty() {
				fmt.Fprintf(out, "smallest: %d\nlargest: %d\n", bm.Minimum(), bm.Maximum())
			}
			return nil
		},
	}
}

func writePrimes(w io.Writer, primes []int64) {
	for i, p := range primes {
		fmt.Fprintf(w, "%4d, ", p)
		if (i+1)%primesPerLine == 0 {
			fmt.Fprintln(w)
		}
	}
	if len(primes)%primesPerLine != 0 {
		fmt.Fprintln(w)
	}
}
