/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ljwobker/npusnap/pkg/index"
	"github.com/ljwobker/npusnap/pkg/serializer"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List snapshots recorded in the local index",
		Flags: []cli.Flag{
			outputDirFlag,
			formatFlagWithDefault(serializer.FormatTable),
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "fuzzy filter on host, label, and filename",
			},
		},
		Action: runList,
	}
}

func runList(ctx context.Context, cmd *cli.Command) error {
	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	db, err := index.Open(index.DefaultPath(cmd.String("output-dir")))
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := db.Search(cmd.String("search"))
	if err != nil {
		return fmt.Errorf("failed to query snapshot index: %w", err)
	}

	return serializer.NewStdoutWriter(format).Serialize(ctx, entries)
}
