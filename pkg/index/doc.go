// Package index maintains a SQLite catalog of written snapshots.
//
// The database lives alongside the snapshot files (index.db in the output
// directory), so an archive copied off a device remains browsable without
// decompressing anything. The list command reads it; the sampler appends to
// it after each successful round.
package index
