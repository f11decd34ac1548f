package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"peoplereport/internal/config"
	"peoplereport/internal/dataset"
	"peoplereport/internal/logging"
	"peoplereport/internal/person"
	"peoplereport/internal/report"
	"peoplereport/internal/workload"
)

var (
	// Config file read from the working directory; absent by default.
	configPath = config.DefaultPath

	// Reports read ages against this clock.
	clock person.Clock = person.SystemClock

	cfg    *config.Config
	sink   *logging.Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "peoplereport",
	Short: "Report on a fixed list of people, then time a large sort",
	Long: `peoplereport prints four reports over a built-in list of six people:
  1. Adults (older than 18) with their contact addresses
  2. Average age over everyone
  3. People born in a leap year
  4. People grouped by age bracket (Child, Youth, Middle-aged, Elderly)

It then sorts 100,000,000 integers and logs how long that took.
Log lines go to stderr and are appended to app.log.`,
	// Positional arguments are accepted and ignored; every run is the same.
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if sink != nil {
			_ = sink.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Failures are logged and swallowed: the process always exits 0.
		_ = guard(logger, func() error { return runReport(cmd) })
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config and builds the logger. Neither step can stop the run.
func setup(cmd *cobra.Command, args []string) error {
	loaded, cfgErr := config.Load(configPath)
	if cfgErr == nil {
		cfgErr = loaded.Validate()
	}
	if cfgErr != nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// logging.New reports its own file failure through the console core.
	sink, _ = logging.New(cfg.Logging, cmd.ErrOrStderr())
	logger = sink.With(zap.String("run_id", uuid.NewString()))

	if cfgErr != nil {
		logger.Error("Config rejected, using defaults", zap.String("path", configPath), zap.Error(cfgErr))
	}
	logger.Debug("Starting", zap.String("version", cfg.Version), zap.Int("workload_size", cfg.Workload.Size))
	return nil
}

// runReport runs the reporting pipeline and then the workload simulator.
func runReport(cmd *cobra.Command) error {
	persons := dataset.Persons()

	r := &report.Reporter{
		Out:    cmd.OutOrStdout(),
		Logger: logger,
		Clock:  clock,
	}
	if _, err := r.Run(persons); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	workload.Run(logger, cfg.Workload.Size)
	return nil
}

// guard runs fn, converting a panic into an error, and logs any failure at
// DPanic level with a stack trace. The error is returned for callers that care.
func guard(log *zap.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			// DPanic only panics in development loggers; this one never is.
			log.DPanic("Exception occurred", zap.Error(err), zap.Stack("stack"))
		}
	}()
	return fn()
}
