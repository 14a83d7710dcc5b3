package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primestep"
)

func newStepCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "step GAP LOW HIGH [GAP LOW HIGH...]",
		Short: "Find the first pair of primes GAP apart in [LOW, HIGH]",
		Long: `Find the first pair of primes (p, p+GAP) with LOW <= p and p+GAP <= HIGH.
Several triples run concurrently against the shared sieve. A pair of {0, 0}
means no such pair exists.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%3 != 0 {
				return fmt.Errorf("expected GAP LOW HIGH triples, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := parseQueries(args)
			if err != nil {
				return err
			}

			pairs, err := st.sieve.StepBatch(cmd.Context(), queries)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, q := range queries {
				writeStep(out, q, pairs[i])
			}
			return nil
		},
	}
}

func parseQueries(args []string) ([]primestep.Query, error) {
	queries := make([]primestep.Query, 0, len(args)/3)
	for i := 0; i+2 < len(args); i += 3 {
		var vals [3]int64
		for j := range vals {
			v, err := strconv.ParseInt(args[i+j], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+j+1, err)
			}
			vals[j] = v
		}
		queries = append(queries, primestep.Query{Gap: vals[0], Low: vals[1], High: vals[2]})
	}
	return queries, nil
}

func writeStep(w io.Writer, q primestep.Query, p primestep.Pair) {
	fmt.Fprintf(w, "(%d, %d, %d) %s\n", q.Gap, q.Low, q.High, p)
}
