/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/ljwobker/npusnap/pkg/logging"
)

const name = "npusnap"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command. It is called by main.main() and handles
// signal-driven cancellation and process exit codes.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "NPU drop-counter snapshot sampler for IOS-XR devices",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Periodically samples diagnostic counters from an XR device by running
vendor show commands, and persists each round as one compressed JSON
snapshot for offline packet-drop analysis.

Typical use, from the device shell:

  nohup npusnap sample -n 60 -i 60s &> npudrops.log &`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			sampleCmd(),
			listCmd(),
			pushCmd(),
		},
	}
}
