// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

package amq

import (
	"context"
	"io"
	"os/exec"
)

// CommandOptions configures a single external command invocation.
type CommandOptions struct {
	// Stdout receives the command's standard output (discarded if nil).
	Stdout io.Writer
	// Stderr receives the command's standard error (discarded if nil).
	Stderr io.Writer
	// Dir is the directory in which the command is run.
	Dir string
}

// CommandExecutor abstracts command execution so tool invocations can be
// faked in tests.
type CommandExecutor interface {
	// Execute runs a command to completion with the given options and
	// returns its exit error, if any.
	Execute(ctx context.Context, opts CommandOptions, name string, args ...string) error
	// LookPath searches for an executable in the directories named by PATH.
	LookPath(file string) (string, error)
}

type realCommandExecutor struct{}

// NewRealCommandExecutor returns a CommandExecutor backed by os/exec.
func NewRealCommandExecutor() CommandExecutor {
	return &realCommandExecutor{}
}

func (r *realCommandExecutor) Execute(ctx context.Context, opts CommandOptions, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Dir = opts.Dir
	// The sweep has no use for a detached tool, so Run rather than Start.
	return cmd.Run()
}

func (r *realCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
