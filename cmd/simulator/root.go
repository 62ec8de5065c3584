package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"subway-simulation/internal/adapters/scheduler"
	"subway-simulation/internal/config"
	"subway-simulation/internal/console"
	"subway-simulation/internal/domain"
	"subway-simulation/internal/platform/logging"
	"subway-simulation/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "subway-simulator",
		Short:         "Interactive single-train subway simulation",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dotenvErr := config.LoadDotEnv()

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger := logging.New(errOut, cfg.LogLevel)
			if dotenvErr != nil {
				logger.Debug("No .env file found (using environment variables)")
			}

			return run(cmd.Context(), cfg, in, out, logger)
		},
	}

	flags := cmd.Flags()
	flags.Int(config.KeyStations, domain.DefaultLineLength, "number of stations on the line")
	flags.Int(config.KeyStartStation, domain.DefaultStartStation, "station the train starts at")
	flags.Float64(config.KeyRate, domain.DefaultTimeRate, "simulation time multiplier")
	flags.Float64(config.KeySubwaySpeed, domain.DefaultTravelSpeed, "stations per simulated time unit")
	flags.Duration(config.KeyTimeUnit, domain.DefaultTimeUnit, "real length of one simulated time unit at rate 1")
	flags.String(config.KeyVerbosity, "warning", "log verbosity: 0-5 or silent, error, warning, info, debug, trace")
	flags.Bool(config.KeyPrompt, true, "print an input prompt when stdin is a terminal")

	return cmd
}

// run is the composition root: it wires the scheduler, transit clock and
// console behind their ports and drives the session until it ends.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *logrus.Logger) error {
	sched := scheduler.NewLoopScheduler(logger)
	defer sched.Close()

	printer := console.NewPrinter(out)

	initial := domain.DefaultConfig()
	initial.TimeUnit = cfg.Simulation.TimeUnit
	clock := services.NewTransitClock(initial, sched, printer, logger)
	defer clock.Close()

	// Startup values go through the same checks as "set" commands.
	for _, fv := range cfg.Fields() {
		if _, err := clock.Configure(fv.Field, fv.Value); err != nil {
			return fmt.Errorf("apply initial %s=%v: %w", fv.Field, fv.Value, err)
		}
	}

	prompt := cfg.Prompt && isTerminal(in)
	session := console.NewSession(console.NewRouter(clock, logger), sched, printer, logger, prompt)

	logger.WithFields(logrus.Fields{
		"time_unit": cfg.Simulation.TimeUnit,
		"prompt":    prompt,
	}).Info("session starting")

	if err := session.Run(ctx, in); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
