//go:build linux

package cli

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// setLowPriority drops the process to the lowest scheduling priority so
// long-running sampling never competes with the router's control plane.
func setLowPriority() {
	if err := unix.Setpriority(unix.PRIO_PROCESS, 0, 19); err != nil {
		slog.Debug("failed to lower process priority", slog.String("error", err.Error()))
	}
}
