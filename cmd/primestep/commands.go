package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/primestep"
)

// cliState carries flag values and the sieve shared by all subcommands of
// one invocation.
type cliState struct {
	logLevel         string
	logJSON          bool
	maxBound         uint64
	memoryLimit      int64
	workers          int
	unboundedPartner bool

	sieve *primestep.Sieve
}

// defaultWorkers sizes StepBatch from the physical core count, falling back
// to the Go runtime when cpuid cannot tell.
func defaultWorkers() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "primestep",
		Short: "Find pairs of primes separated by a fixed gap",
		Long: `primestep answers gapped prime pair queries with an incrementally
extended sieve of Eratosthenes. All queries of one invocation share the sieve.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st.sieve == nil {
				return nil
			}
			return st.sieve.Close()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&st.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolVar(&st.logJSON, "log-json", false, "emit logs as JSON")
	pf.Uint64Var(&st.maxBound, "max-bound", primestep.DefaultMaxBound, "largest value the sieve may cover")
	pf.Int64Var(&st.memoryLimit, "memory-limit", 0, "cap on sieve table memory in bytes (0 = unlimited)")
	pf.IntVar(&st.workers, "workers", defaultWorkers(), "concurrent queries for multi-query step")
	pf.BoolVar(&st.unboundedPartner, "unbounded-partner", false, "let the second prime exceed the upper bound")

	rootCmd.AddCommand(
		newStepCmd(st),
		newIsPrimeCmd(st),
		newPrimesCmd(st),
		newCountCmd(st),
		newSelfTestCmd(st),
		newInfoCmd(),
	)

	return rootCmd
}

func (st *cliState) open() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(st.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", st.logLevel, err)
	}

	logger := primestep.NewTextLogger(level)
	if st.logJSON {
		logger = primestep.NewJSONLogger(level)
	}

	policy := primestep.PartnerWithinBound
	if st.unboundedPartner {
		policy = primestep.PartnerUnbounded
	}

	st.sieve = primestep.New(
		primestep.WithLogger(logger),
		primestep.WithMaxBound(st.maxBound),
		primestep.WithMemoryLimit(st.memoryLimit),
		primestep.WithWorkers(st.workers),
		primestep.WithPartnerPolicy(policy),
	)
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print host CPU details and default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CPU Name: %s\n", cpuid.CPU.BrandName)
			fmt.Fprintf(out, "CPU Frequency: %d\n", cpuid.CPU.Hz)
			fmt.Fprintf(out, "CPU Cores: %d\n", cpuid.CPU.PhysicalCores)
			fmt.Fprintf(out, "Default workers: %d\n", defaultWorkers())
			return nil
		},
	}
}
