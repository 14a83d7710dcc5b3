package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newIsPrimeCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "isprime VALUE...",
		Short: "Report whether each value is prime",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				ok, err := st.sieve.IsPrime(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d %t\n", v, ok)
			}
			return nil
		},
	}
}
