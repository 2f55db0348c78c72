// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package cliio carries the stream dependencies of CLI command handlers so
// they stay testable without a cobra command.
package cliio

import (
	"io"
	"os"
)

// IO bundles the streams a command handler reads and writes.
type IO struct {
	In  io.Reader // stdin
	Out io.Writer // stdout
	Err io.Writer // stderr
}

// Std returns the process's own streams.
func Std() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}
