// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package run implements the sweep subcommand.
package run

import (
	"context"
	"flag"
	"strconv"
	"strings"

	"github.com/amquery/amq-sweep/internal/cliio"
	"github.com/amquery/amq-sweep/pkg/amq"
	"github.com/amquery/amq-sweep/pkg/sweep"
	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config holds all configuration for the run command.
type Config struct {
	InputDir    string
	OutputDir   string
	ConfigPath  string
	Pattern     string
	SampleSize  int
	Sizes       string
	AmqPath     string
	AmqTestPath string
	Strict      bool
	Verbose     bool
}

// Validate ensures the configuration is valid.
func (c Config) Validate() error {
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("input and output directories are required")
	}
	if c.SampleSize < 0 {
		return errors.Errorf("invalid sample size: %d", c.SampleSize)
	}
	return nil
}

func parseArgs(cfg *Config, args []string) error {
	if len(args) != 2 {
		return errors.New("expected exactly 2 arguments: <input-dir> <output-dir>")
	}
	cfg.InputDir = args[0]
	cfg.OutputDir = args[1]
	return nil
}

func parseSizes(spec string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(spec, ",") {
		s, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Errorf("invalid build size %q", part)
		}
		sizes = append(sizes, s)
	}
	return sizes, nil
}

// sweepConfig merges the config file (if any) with flag overrides. Flags
// left at their zero value do not override.
func sweepConfig(cfg Config) (sweep.Config, error) {
	sc := sweep.DefaultConfig()
	if cfg.ConfigPath != "" {
		var err error
		sc, err = sweep.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return sweep.Config{}, err
		}
	}
	if cfg.Pattern != "" {
		sc.Pattern = cfg.Pattern
	}
	if cfg.SampleSize > 0 {
		sc.SampleSize = cfg.SampleSize
	}
	if cfg.Sizes != "" {
		sizes, err := parseSizes(cfg.Sizes)
		if err != nil {
			return sweep.Config{}, err
		}
		sc.Sizes = sizes
	}
	if cfg.AmqPath != "" {
		sc.AmqPath = cfg.AmqPath
	}
	if cfg.AmqTestPath != "" {
		sc.AmqTestPath = cfg.AmqTestPath
	}
	if err := sc.Validate(); err != nil {
		return sweep.Config{}, err
	}
	return sc, nil
}

// Handler contains the business logic for the run command. It does not
// depend on cobra and can be tested independently.
func Handler(ctx context.Context, cfg Config, cio cliio.IO) error {
	sc, err := sweepConfig(cfg)
	if err != nil {
		return err
	}
	tools := amq.NewCLITools(sc.AmqPath, sc.AmqTestPath)
	if err := tools.Check(); err != nil {
		return err
	}
	runner := sweep.NewRunner(sc, tools)
	runner.Strict = cfg.Strict
	var bar *pb.ProgressBar
	if !cfg.Verbose {
		bar = pb.New(len(sc.Sizes))
		bar.Output = cio.Err
		bar.ShowTimeLeft = true
		bar.Start()
		runner.Progress = func(sweep.Outcome) { bar.Increment() }
	}
	summary, err := runner.Run(ctx, cfg.InputDir, cfg.OutputDir)
	if bar != nil {
		bar.Finish()
	}
	if werr := summary.Write(cio.Out); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}
	if failed := summary.Failed(); failed > 0 {
		return errors.Errorf("%d of %d build sizes failed", failed, len(summary))
	}
	return nil
}

// Command creates a new run command instance.
func Command() *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "run [-config <file>] [-sizes N,N,...] <input-dir> <output-dir>",
		Short: "Run the precision-test sweep over all build sizes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseArgs(&cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			// Past argument validation, failures are sweep failures and
			// re-printing usage would only bury them.
			cmd.SilenceUsage = true
			return Handler(cmd.Context(), cfg, cliio.IO{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			})
		},
	}
	cmd.Flags().AddGoFlagSet(flagSet(cmd.Name(), &cfg))
	return cmd
}

// flagSet returns the command-line flags for the Config struct.
func flagSet(name string, cfg *Config) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.StringVar(&cfg.ConfigPath, "config", "", "YAML file overriding the default sweep parameters")
	set.StringVar(&cfg.Pattern, "pattern", "", "glob matched against candidate link names (default *.fasta)")
	set.IntVar(&cfg.SampleSize, "sample-size", 0, "maximum sample size per build size (default 100)")
	set.StringVar(&cfg.Sizes, "sizes", "", "comma-separated build sizes (default 100,200,...,1000)")
	set.StringVar(&cfg.AmqPath, "amq", "", "path to the index tool binary")
	set.StringVar(&cfg.AmqTestPath, "amq-test", "", "path to the precision-test tool binary")
	set.BoolVar(&cfg.Strict, "strict", false, "abort the sweep at the first failed build size")
	set.BoolVar(&cfg.Verbose, "v", false, "verbose output (disables the progress bar)")
	return set
}
