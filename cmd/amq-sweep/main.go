// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// amq-sweep drives the external AMQ index toolchain through a batch
// precision-testing sweep.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	runcmd "github.com/amquery/amq-sweep/internal/command/run"
	samplecmd "github.com/amquery/amq-sweep/internal/command/sample"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amq-sweep",
	Short: "Batch precision-testing sweep driver for AMQ index builds",
	// Errors are reported once, through log.Fatal in main.
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runcmd.Command())
	rootCmd.AddCommand(samplecmd.Command())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
