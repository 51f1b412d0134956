// Package logging provides structured logging utilities for npusnap.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module and version context on every record, and
// environment-based level configuration via LOG_LEVEL.
//
// Setting the default logger (recommended, early in main):
//
//	logging.SetDefaultStructuredLoggerWithLevel("npusnap", version, "info")
//	slog.Info("starting", "interval", interval)
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
// Debug logs include source location.
package logging
