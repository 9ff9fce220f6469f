package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"ledger/internal/sim"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		debug    bool
		workers  int
		ops      int
		minDelay time.Duration
		maxDelay time.Duration
		seed     int64
	)

	cmd := &cobra.Command{
		Use:          "ledger",
		Short:        "ledger — concurrent bank account simulation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), debug)

			cfg := sim.DefaultConfig()
			if cfgPath != "" {
				var err error
				if cfg, err = sim.LoadConfig(cfgPath); err != nil {
					return err
				}
			}

			// Flags win over the config file, but only when actually set.
			flags := cmd.Flags()
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("ops") {
				cfg.Ops = ops
			}
			if flags.Changed("min-delay") {
				cfg.MinDelay = minDelay
			}
			if flags.Changed("max-delay") {
				cfg.MaxDelay = maxDelay
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			log.Info("simulation starting",
				"workers", cfg.Workers,
				"ops", cfg.Ops,
				"accounts", len(cfg.Accounts),
				"seed", cfg.Seed,
			)
			result, err := sim.NewRunner(cfg, log).Run(ctx)
			if err != nil {
				return err
			}

			printReport(cmd, result)
			if !result.Conserved() {
				return errors.New("conservation violated: total balance drifted from net deposits")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML simulation config")
	cmd.Flags().IntVar(&workers, "workers", 5, "number of concurrent workers")
	cmd.Flags().IntVar(&ops, "ops", 7, "operations per worker")
	cmd.Flags().DurationVar(&minDelay, "min-delay", 5*time.Millisecond, "minimum delay between operations")
	cmd.Flags().DurationVar(&maxDelay, "max-delay", 25*time.Millisecond, "maximum delay between operations")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (default: current time)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every operation")
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printReport(cmd *cobra.Command, r sim.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n--- Final Balances ---")
	for _, b := range r.Balances {
		fmt.Fprintf(out, "%s: %s\n", b.Holder, b.Amount.StringFixed(2))
	}
	fmt.Fprintf(out, "total: %s (seeded %s, deposited %s, withdrawn %s)\n",
		r.FinalTotal.StringFixed(2),
		r.InitialTotal.StringFixed(2),
		r.Deposited.StringFixed(2),
		r.Withdrawn.StringFixed(2),
	)
	if r.Interrupted {
		fmt.Fprintln(out, "run interrupted, report covers completed operations")
	}
	if r.Conserved() {
		fmt.Fprintln(out, "Success: total balance matches net deposits")
	} else {
		fmt.Fprintln(out, "Error: total balance does not match net deposits")
	}
}
