// Command aoc2024 runs the Advent of Code 2024 solvers.
//
// With no arguments, "aoc2024 run" checks every puzzle against its sample,
// then solves it with the real input, fetched and cached on first use.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lanternfish/aoc2024"
	"github.com/lanternfish/aoc2024/config"
)

var logger *zap.Logger

// newLogger builds the logger for each command run.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

type options struct {
	configPath  string
	verbose     bool
	skipSamples bool
	offline     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "aoc2024",
		Short:         "Advent of Code 2024 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	run := &cobra.Command{
		Use:   "run [day...]",
		Short: "Verify samples and solve the given days (all when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDays(cmd, opts, args)
		},
	}
	run.Flags().BoolVar(&opts.skipSamples, "skip-samples", false, "don't check answers against the samples first")
	run.Flags().BoolVar(&opts.offline, "offline", false, "never fetch inputs")

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles and their sample answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPuzzles(cmd)
		},
	}

	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			logger.Info("wrote config", zap.String("path", path))
			return nil
		},
	})

	root.AddCommand(run, list, cfgCmd)
	return root
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("bad day %q", a)
		}
		days = append(days, d)
	}
	return days, nil
}

func runDays(cmd *cobra.Command, opts options, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	samples, err := aoc.ExtractSamples(puzzleSrc)
	if err != nil {
		return err
	}
	logger.Debug("loaded config",
		zap.Int("year", cfg.Year),
		zap.String("input_dir", cfg.InputDir),
		zap.Int("samples", len(samples)))

	r := &aoc.Runner{
		Registry: aoc.Default(),
		Samples:  samples,
		Inputs: &aoc.FileOrFetch{
			Dir:     cfg.InputDir,
			Year:    cfg.Year,
			BaseURL: cfg.BaseURL,
			Offline: opts.offline || !cfg.Fetch,
			Session: cfg.SessionToken,
			Logger:  logger,
		},
		Logger:        logger,
		Out:           cmd.OutOrStdout(),
		VerifySamples: cfg.VerifySamples && !opts.skipSamples,
	}
	_, err = r.Run(days...)
	return err
}

func listPuzzles(cmd *cobra.Command) error {
	samples, err := aoc.ExtractSamples(puzzleSrc)
	if err != nil {
		return err
	}
	reg := aoc.Default()
	for _, d := range reg.Days() {
		for _, p := range reg.Parts(d) {
			want := "-"
			if s, ok := samples[p.Name]; ok {
				want = s.Want
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s day %2d part %d  sample want=%s\n", p.Name, p.Day, p.Part, want)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
