/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ljwobker/npusnap/pkg/defaults"
	"github.com/ljwobker/npusnap/pkg/serializer"
)

// Flags shared across commands.
var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}

	outputDirFlag = &cli.StringFlag{
		Name:    "output-dir",
		Aliases: []string{"o"},
		Usage:   "snapshot directory",
		Sources: cli.EnvVars("NPUSNAP_OUTPUT_DIR"),
		Value:   defaults.OutputDir,
	}
)

// formatFlagWithDefault builds the shared format flag; commands differ in
// their natural default (snapshots compress, listings print).
func formatFlagWithDefault(def serializer.Format) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("output format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(def),
	}
}

// parseFormat validates a format flag value.
func parseFormat(s string) (serializer.Format, error) {
	f := serializer.Format(s)
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q (supported: %s)",
			s, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}
