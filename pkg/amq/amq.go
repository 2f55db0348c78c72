// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package amq wraps the external AMQ index toolchain behind a narrow,
// substitutable interface.
//
// The index tools themselves are opaque collaborators: amq establishes
// which on-disk index build is active and amq-test measures query precision
// against it. Nothing in this package interprets their output.
package amq

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Default binary names resolved via PATH.
const (
	DefaultAmqPath     = "amq"
	DefaultAmqTestPath = "amq-test"
)

// Tools is the two-operation surface the sweep needs from the toolchain.
type Tools interface {
	// SelectWorkingIndex makes the index build under indexDir the active
	// one for subsequent queries.
	SelectWorkingIndex(ctx context.Context, indexDir string) error
	// PrecisionTest runs a quiet precision measurement over the sample
	// paths, streaming the tool's standard output to out.
	PrecisionTest(ctx context.Context, out io.Writer, samples []string) error
}

// CLITools implements Tools by invoking the external amq and amq-test
// binaries.
type CLITools struct {
	AmqPath     string
	AmqTestPath string
	Exec        CommandExecutor
}

var _ Tools = &CLITools{}

// NewCLITools returns a process-backed Tools. Empty paths fall back to the
// default binary names.
func NewCLITools(amqPath, amqTestPath string) *CLITools {
	if amqPath == "" {
		amqPath = DefaultAmqPath
	}
	if amqTestPath == "" {
		amqTestPath = DefaultAmqTestPath
	}
	return &CLITools{
		AmqPath:     amqPath,
		AmqTestPath: amqTestPath,
		Exec:        NewRealCommandExecutor(),
	}
}

// Check verifies both binaries are resolvable before any invocation.
func (t *CLITools) Check() error {
	if _, err := t.Exec.LookPath(t.AmqPath); err != nil {
		return errors.Wrapf(err, "locating index tool %q", t.AmqPath)
	}
	if _, err := t.Exec.LookPath(t.AmqTestPath); err != nil {
		return errors.Wrapf(err, "locating precision-test tool %q", t.AmqTestPath)
	}
	return nil
}

func (t *CLITools) SelectWorkingIndex(ctx context.Context, indexDir string) error {
	var stderr bytes.Buffer
	err := t.Exec.Execute(ctx, CommandOptions{Stderr: &stderr}, t.AmqPath, "--workon", indexDir, "select", "origin")
	if err != nil {
		return errors.Wrapf(withStderr(err, &stderr), "selecting working index in %s", indexDir)
	}
	return nil
}

func (t *CLITools) PrecisionTest(ctx context.Context, out io.Writer, samples []string) error {
	args := append([]string{"--quiet", "precision"}, samples...)
	var stderr bytes.Buffer
	err := t.Exec.Execute(ctx, CommandOptions{Stdout: out, Stderr: &stderr}, t.AmqTestPath, args...)
	if err != nil {
		return errors.Wrapf(withStderr(err, &stderr), "precision test over %d samples", len(samples))
	}
	return nil
}

// withStderr folds captured stderr into the command error so failures carry
// the tool's own diagnostic.
func withStderr(err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return err
	}
	return errors.Wrap(err, msg)
}
