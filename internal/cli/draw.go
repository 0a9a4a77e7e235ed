package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/config"
	"github.com/mmynk/secretsanta/internal/report"
	"github.com/mmynk/secretsanta/internal/roster"
	"github.com/mmynk/secretsanta/pkg/logging"
)

func drawCmd() *cobra.Command {
	var (
		seed        uint64
		format      string
		maxAttempts int
		timeBudget  time.Duration
		prune       bool
	)

	c := &cobra.Command{
		Use:   "draw <roster>",
		Short: "Draw one assignment from a roster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("max-attempts") {
				cfg.MaxAttempts = maxAttempts
			}
			if flags.Changed("time-budget") {
				cfg.TimeBudget = timeBudget
			}
			if flags.Changed("prune") {
				cfg.Prune = prune
			}

			logger := newLogger(cmd)

			people, err := roster.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("roster loaded", "path", args[0], "people", len(people))

			opts := append(cfg.EngineOptions(), assignment.WithLogger(logger))
			if flags.Changed("seed") {
				opts = append(opts, assignment.WithSeed(seed))
			}

			a, err := assignment.New(opts...).Assign(people)
			if err != nil {
				return err
			}
			logger.Debug("assignment drawn", "attempts", a.Attempts)

			out := cmd.OutOrStdout()
			if format == "json" {
				return report.WriteJSON(out, people, a)
			}
			return report.WriteText(out, people, a)
		},
	}

	c.Flags().Uint64Var(&seed, "seed", 0, "replay a fixed random stream (optional)")
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json")
	c.Flags().IntVar(&maxAttempts, "max-attempts", assignment.DefaultMaxAttempts, "attempt ceiling (overrides SANTA_MAX_ATTEMPTS)")
	c.Flags().DurationVar(&timeBudget, "time-budget", 5*time.Second, "wall time ceiling, 0 for none (overrides SANTA_TIME_BUDGET)")
	c.Flags().BoolVar(&prune, "prune", false, "skip receivers that would make the rest unsolvable (overrides SANTA_PRUNE)")
	return c
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := logging.LevelFromEnv()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level)
}
