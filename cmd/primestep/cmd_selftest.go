package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primestep"
)

var errSelfTestFailed = errors.New("self test failed")

type stepCase struct {
	query primestep.Query
	want  primestep.Pair
}

var stepCases = []stepCase{
	{primestep.Query{Gap: 2, Low: 100, High: 110}, primestep.Pair{First: 101, Second: 103}},
	{primestep.Query{Gap: 11, Low: 30000, High: 100000}, primestep.Pair{}},
	{primestep.Query{Gap: 2, Low: 2, High: 50}, primestep.Pair{First: 3, Second: 5}},
	{primestep.Query{Gap: 4, Low: 100, High: 110}, primestep.Pair{First: 103, Second: 107}},
	{primestep.Query{Gap: 6, Low: 100, High: 110}, primestep.Pair{First: 101, Second: 107}},
	{primestep.Query{Gap: 8, Low: 300, High: 400}, primestep.Pair{First: 359, Second: 367}},
	{primestep.Query{Gap: 10, Low: 300, High: 400}, primestep.Pair{First: 307, Second: 317}},
}

type listing struct {
	count       int
	limit       uint64
	first, last int64
}

var listings = []listing{
	{20, 100, 0, 0},
	{27, 101, 0, 0},
	{4000, 100000, 29999, 30050},
}

func newSelfTestCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in reference queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(cmd.OutOrStdout(), st.sieve)
		},
	}
}

func runSelfTest(w io.Writer, s *primestep.Sieve) error {
	for _, l := range listings {
		fmt.Fprintf(w, "primes(%d, %d, %d, %d)\n", l.count, l.limit, l.first, l.last)
		primes, err := s.Primes(l.count, l.limit, l.first, l.last)
		if err != nil {
			return err
		}
		writePrimes(w, primes)
	}

	failed := 0
	for _, c := range stepCases {
		q := c.query
		fmt.Fprintf(w, "(%d, %d, %d) %s\n", q.Gap, q.Low, q.High, c.want)

		got, err := s.Step(q.Gap, q.Low, q.High)
		if err != nil {
			return err
		}

		verdict := "Passed"
		if got != c.want {
			verdict = "Failed"
			failed++
		}
		fmt.Fprintf(w, "%s %s\n", verdict, got)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", errSelfTestFailed, failed, len(stepCases))
	}
	return nil
}
