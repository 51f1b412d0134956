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

	"github.com/urfave/cli/v3"

	"github.com/ljwobker/npusnap/pkg/defaults"
	apperrors "github.com/ljwobker/npusnap/pkg/errors"
	"github.com/ljwobker/npusnap/pkg/oci"
)

func pushCmd() *cli.Command {
	return &cli.Command{
		Name:      "push",
		Usage:     "Push a snapshot directory to an OCI registry",
		ArgsUsage: "oci://registry/repository[:tag]",
		Description: `Packages the snapshot directory as a single-layer OCI artifact and
pushes it with ORAS, so collected archives can be pulled off the
device through existing registry infrastructure:

  npusnap push oci://ghcr.io/netops/npusnap:core-rtr1`,
		Flags: []cli.Flag{
			outputDirFlag,
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "use HTTP instead of HTTPS for the registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "skip TLS certificate verification",
			},
		},
		Action: runPush,
	}
}

func runPush(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			"push requires exactly one target, e.g. oci://ghcr.io/netops/npusnap:core-rtr1")
	}

	ref, err := oci.ParseTarget(cmd.Args().First())
	if err != nil {
		return err
	}
	if !ref.IsOCI {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("target must use the %s scheme", oci.URIScheme))
	}
	if ref.Tag == "" {
		ref.Tag = defaultTag()
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.PushTimeout)
	defer cancel()

	result, err := oci.Push(ctx, oci.PushOptions{
		SourceDir:   cmd.String("output-dir"),
		Registry:    ref.Registry,
		Repository:  ref.Repository,
		Tag:         ref.Tag,
		PlainHTTP:   cmd.Bool("plain-http"),
		InsecureTLS: cmd.Bool("insecure-tls"),
	})
	if err != nil {
		return err
	}

	slog.Info("pushed snapshots",
		slog.String("reference", result.Reference),
		slog.String("digest", result.Digest))
	fmt.Fprintln(cmd.Writer, result.Reference)
	return nil
}

// defaultTag tags untagged pushes with the device's hostname so archives
// from different routers do not overwrite each other.
func defaultTag() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return "latest"
}
