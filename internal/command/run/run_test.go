// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil, wantErr: true},
		{name: "one arg", args: []string{"/in"}, wantErr: true},
		{name: "two args", args: []string{"/in", "/out"}},
		{name: "three args", args: []string{"/in", "/out", "/extra"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			err := parseArgs(&cfg, tc.args)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseArgs(%v) error = %v, wantErr = %v", tc.args, err, tc.wantErr)
			}
			if err == nil && (cfg.InputDir != "/in" || cfg.OutputDir != "/out") {
				t.Errorf("parsed dirs = %q, %q", cfg.InputDir, cfg.OutputDir)
			}
		})
	}
}

func TestParseSizes(t *testing.T) {
	got, err := parseSizes("100, 200,300")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{100, 200, 300}, got); diff != "" {
		t.Errorf("parseSizes mismatch (-want +got):\n%s", diff)
	}
	if _, err := parseSizes("100,large"); err == nil {
		t.Error("expected error for non-numeric size")
	}
}

func TestSweepConfigFlagOverrides(t *testing.T) {
	sc, err := sweepConfig(Config{Pattern: "*.fa", SampleSize: 10, Sizes: "50,150", AmqTestPath: "/opt/amq-test"})
	if err != nil {
		t.Fatal(err)
	}
	if sc.Pattern != "*.fa" || sc.SampleSize != 10 || sc.AmqTestPath != "/opt/amq-test" {
		t.Errorf("overrides not applied: %+v", sc)
	}
	if diff := cmp.Diff([]int{50, 150}, sc.Sizes); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
	// Untouched fields keep their defaults.
	if sc.AmqPath != "amq" {
		t.Errorf("amq path = %q, want default", sc.AmqPath)
	}
}

func TestSweepConfigDefaults(t *testing.T) {
	sc, err := sweepConfig(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if sc.Pattern != "*.fasta" || sc.SampleSize != 100 || len(sc.Sizes) != 10 {
		t.Errorf("unexpected defaults: %+v", sc)
	}
}

func TestSweepConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	if err := os.WriteFile(path, []byte("sample_size: 25\npattern: \"*.fa\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := sweepConfig(Config{ConfigPath: path, SampleSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	// Flags win over the file; file wins over defaults.
	if sc.SampleSize != 5 {
		t.Errorf("sample size = %d, want flag value 5", sc.SampleSize)
	}
	if sc.Pattern != "*.fa" {
		t.Errorf("pattern = %q, want file value *.fa", sc.Pattern)
	}
}

func TestSweepConfigInvalid(t *testing.T) {
	if _, err := sweepConfig(Config{Sizes: "300,100"}); err == nil {
		t.Error("expected error for non-increasing sizes")
	}
	if _, err := sweepConfig(Config{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestCommandRejectsWrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"/in"}, {"/in", "/out", "/extra"}} {
		cmd := Command()
		cmd.SetArgs(args)
		var out strings.Builder
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		if err := cmd.Execute(); err == nil {
			t.Errorf("Execute(%v) succeeded, want usage error", args)
		}
	}
}
