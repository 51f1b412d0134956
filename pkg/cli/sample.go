/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ljwobker/npusnap/pkg/cmdtable"
	"github.com/ljwobker/npusnap/pkg/collector"
	"github.com/ljwobker/npusnap/pkg/defaults"
	"github.com/ljwobker/npusnap/pkg/index"
	"github.com/ljwobker/npusnap/pkg/sampler"
	"github.com/ljwobker/npusnap/pkg/serializer"
)

func sampleCmd() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "Clear drop counters, then sample them on an interval",
		Description: `Runs the profile's clear commands once, then executes the show table
every interval and writes each round as one snapshot file. Commands
missing from the device are skipped; a command that exceeds the
timeout aborts sampling.`,
		Flags: []cli.Flag{
			outputDirFlag,
			formatFlagWithDefault(serializer.FormatJSONXZ),
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "spacing between round starts",
				Value:   defaults.SampleInterval,
			},
			&cli.IntFlag{
				Name:    "runs",
				Aliases: []string{"n"},
				Usage:   "number of rounds to run (0 = until interrupted)",
				Value:   1,
			},
			&cli.StringFlag{
				Name:    "label",
				Aliases: []string{"l"},
				Usage:   "prefix for snapshot filenames, e.g. \"precheck_\"",
			},
			&cli.DurationFlag{
				Name:  "command-timeout",
				Usage: "per-command execution limit",
				Value: defaults.CommandTimeout,
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "YAML device profile overriding the built-in command table",
			},
			&cli.BoolFlag{
				Name:  "skip-clear",
				Usage: "do not clear drop counters before the first round",
			},
			&cli.StringSliceFlag{
				Name:  "platform-services",
				Usage: "systemd units whose states are folded into each snapshot",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve Prometheus metrics on this address while sampling (e.g. :9464)",
			},
			&cli.BoolFlag{
				Name:  "no-index",
				Usage: "skip recording snapshots in the local index",
			},
		},
		Action: runSample,
	}
}

func runSample(ctx context.Context, cmd *cli.Command) error {
	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	profile := cmdtable.DefaultProfile()
	if path := cmd.String("profile"); path != "" {
		profile, err = cmdtable.LoadProfile(path)
		if err != nil {
			return err
		}
	}

	// the loop can run for hours on a production device; stay out of the way
	setLowPriority()

	cfg := sampler.Config{
		Interval:    cmd.Duration("interval"),
		Runs:        int(cmd.Int("runs")),
		OutputDir:   cmd.String("output-dir"),
		Label:       cmd.String("label"),
		Format:      format,
		Version:     version,
		SkipClear:   cmd.Bool("skip-clear"),
		MetricsAddr: cmd.String("metrics-addr"),
	}

	var opts []sampler.Option
	if units := cmd.StringSlice("platform-services"); len(units) > 0 {
		opts = append(opts, sampler.WithServiceStater(&collector.ServiceStateCollector{Units: units}))
	}
	if !cmd.Bool("no-index") {
		db, err := index.Open(index.DefaultPath(cfg.OutputDir))
		if err != nil {
			// the index is a convenience; sampling still works without it
			slog.Warn("failed to open snapshot index", slog.String("error", err.Error()))
		} else {
			defer db.Close()
			opts = append(opts, sampler.WithIndex(db))
		}
	}

	runner := &collector.ExecRunner{Timeout: cmd.Duration("command-timeout")}
	return sampler.New(cfg, profile, runner, opts...).Run(ctx)
}
