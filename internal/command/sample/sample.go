// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package sample implements the dry-run sampling subcommand. It exercises
// the candidate enumeration and sampling path for a single build size
// without touching any external tool.
package sample

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strconv"
	"time"

	"github.com/amquery/amq-sweep/internal/cliio"
	"github.com/amquery/amq-sweep/internal/linkset"
	"github.com/amquery/amq-sweep/internal/sample"
	"github.com/amquery/amq-sweep/pkg/sweep"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config holds all configuration for the sample command.
type Config struct {
	InputDir   string
	Size       int
	ConfigPath string
	Pattern    string
	SampleSize int
	Seed       int64
}

// Validate ensures the configuration is valid.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("build size must be positive, got %d", c.Size)
	}
	return nil
}

func parseArgs(cfg *Config, args []string) error {
	if len(args) != 2 {
		return errors.New("expected exactly 2 arguments: <input-dir> <size>")
	}
	cfg.InputDir = args[0]
	size, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Errorf("invalid build size %q", args[1])
	}
	cfg.Size = size
	return nil
}

// Handler resolves and prints one sample, one path per line.
func Handler(ctx context.Context, cfg Config, cio cliio.IO) error {
	pattern := sweep.DefaultPattern
	size := sweep.DefaultSampleSize
	if cfg.ConfigPath != "" {
		sc, err := sweep.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return err
		}
		pattern, size = sc.Pattern, sc.SampleSize
	}
	if cfg.Pattern != "" {
		pattern = cfg.Pattern
	}
	if cfg.SampleSize > 0 {
		size = cfg.SampleSize
	}
	dir := filepath.Join(cfg.InputDir, strconv.Itoa(cfg.Size), "additional")
	set, err := linkset.Resolve(dir, pattern)
	if err != nil {
		return errors.Wrapf(err, "size %d", cfg.Size)
	}
	for _, s := range set.Skipped {
		log.Printf("skipping unresolvable link %s: %v", s.Link, s.Err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for _, p := range sample.Pick(rand.New(rand.NewSource(seed)), set.Resolved, size) {
		if _, err := fmt.Fprintln(cio.Out, p); err != nil {
			return err
		}
	}
	return nil
}

// Command creates a new sample command instance.
func Command() *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "sample [-pattern <glob>] [-sample-size N] <input-dir> <size>",
		Short: "Print the sample set for one build size without invoking any tool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseArgs(&cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
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
	set.IntVar(&cfg.SampleSize, "sample-size", 0, "maximum sample size (default 100)")
	set.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 uses the current time)")
	return set
}
