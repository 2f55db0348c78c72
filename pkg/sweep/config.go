// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"os"
	"path"

	"github.com/amquery/amq-sweep/pkg/amq"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// Defaults matching the original sweep procedure.
const (
	DefaultSampleSize = 100
	DefaultPattern    = "*.fasta"
)

// DefaultSizes returns the build-size sequence {100, 200, ..., 1000}.
func DefaultSizes() []int {
	var sizes []int
	for s := 100; s <= 1000; s += 100 {
		sizes = append(sizes, s)
	}
	return sizes
}

// Config holds all sweep parameters. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	// Sizes is the ordered sequence of build sizes to process.
	Sizes []int `yaml:"sizes"`
	// SampleSize caps how many candidate paths are tested per size.
	SampleSize int `yaml:"sample_size"`
	// Pattern is the glob matched against candidate link names.
	Pattern string `yaml:"pattern"`
	// AmqPath and AmqTestPath name the external tool binaries.
	AmqPath     string `yaml:"amq"`
	AmqTestPath string `yaml:"amq_test"`
}

// DefaultConfig returns the sweep parameters of the original procedure.
func DefaultConfig() Config {
	return Config{
		Sizes:       DefaultSizes(),
		SampleSize:  DefaultSampleSize,
		Pattern:     DefaultPattern,
		AmqPath:     amq.DefaultAmqPath,
		AmqTestPath: amq.DefaultAmqTestPath,
	}
}

// LoadConfig overlays a YAML config file onto the defaults. Fields absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate ensures the configuration is usable: at least one positive build
// size in strictly increasing order, a positive sample cap, and a
// well-formed glob pattern.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no build sizes configured")
	}
	prev := 0
	for _, s := range c.Sizes {
		if s <= prev {
			return errors.Errorf("build sizes must be positive and strictly increasing, got %v", c.Sizes)
		}
		prev = s
	}
	if c.SampleSize <= 0 {
		return errors.Errorf("sample size must be positive, got %d", c.SampleSize)
	}
	if _, err := path.Match(c.Pattern, ""); err != nil {
		return errors.Wrapf(err, "pattern %q", c.Pattern)
	}
	return nil
}
