// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	wantSizes := []int{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}
	if diff := cmp.Diff(wantSizes, cfg.Sizes); diff != "" {
		t.Errorf("default sizes mismatch (-want +got):\n%s", diff)
	}
	if cfg.SampleSize != 100 {
		t.Errorf("default sample size = %d, want 100", cfg.SampleSize)
	}
	if cfg.Pattern != "*.fasta" {
		t.Errorf("default pattern = %q, want *.fasta", cfg.Pattern)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	doc := "sample_size: 10\npattern: \"*.fa\"\nsizes: [50, 150]\namq: /opt/amq/bin/amq\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Sizes:       []int{50, 150},
		SampleSize:  10,
		Pattern:     "*.fa",
		AmqPath:     "/opt/amq/bin/amq",
		AmqTestPath: "amq-test", // untouched default
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sizes: [200, 100]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for non-increasing sizes")
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "no sizes", mutate: func(c *Config) { c.Sizes = nil }, wantErr: true},
		{name: "negative size", mutate: func(c *Config) { c.Sizes = []int{-5, 100} }, wantErr: true},
		{name: "duplicate size", mutate: func(c *Config) { c.Sizes = []int{100, 100} }, wantErr: true},
		{name: "decreasing sizes", mutate: func(c *Config) { c.Sizes = []int{300, 200} }, wantErr: true},
		{name: "zero sample size", mutate: func(c *Config) { c.SampleSize = 0 }, wantErr: true},
		{name: "bad pattern", mutate: func(c *Config) { c.Pattern = "[" }, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}
