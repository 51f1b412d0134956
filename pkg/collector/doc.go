// Package collector executes tables of vendor diagnostic commands and
// captures their output.
//
// The Runner interface abstracts execution so the sampling loop can be
// tested without spawning processes. ExecRunner is the production
// implementation: it launches every command of a table concurrently, bounds
// each with a wall-clock timeout, and merges captured stdout into a flat
// label-to-text map.
//
// Commands whose binaries do not resolve are skipped, not failed; a command
// table intentionally over-enumerates hardware (every possible card/NPU
// slot) and lets the device decide what exists. A timeout, by contrast,
// aborts the entire run: a wedged show command on a loaded system means the
// sample is already suspect.
//
// ServiceStateCollector supplements command output with systemd unit states
// queried over dbus.
package collector
