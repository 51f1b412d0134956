package defaults

import "time"

// Sampling timeouts and intervals.
const (
	// CommandTimeout bounds a single diagnostic command execution.
	// A command that exceeds it is killed and the run is aborted.
	CommandTimeout = 180 * time.Second

	// SampleInterval is the default spacing between sampling rounds.
	SampleInterval = 30 * time.Second

	// ServiceStateTimeout bounds systemd unit state queries.
	ServiceStateTimeout = 10 * time.Second
)

// Output defaults.
const (
	// OutputDir is where snapshots land when no directory is given.
	// disk1 is the writable scratch volume on XR route processors.
	OutputDir = "/var/xr/disk1/envSnaps"

	// DirPerm is the permission mode for created snapshot directories.
	DirPerm = 0o755

	// FilePerm is the permission mode for written snapshot files.
	FilePerm = 0o644
)

// Metrics listener timeouts.
const (
	// MetricsReadHeaderTimeout prevents slow header attacks on the
	// optional /metrics listener.
	MetricsReadHeaderTimeout = 5 * time.Second

	// MetricsShutdownTimeout is the maximum duration for graceful
	// shutdown of the metrics listener.
	MetricsShutdownTimeout = 5 * time.Second
)

// Registry timeouts.
const (
	// PushTimeout bounds a snapshot push to an OCI registry.
	PushTimeout = 5 * time.Minute
)
