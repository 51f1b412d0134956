package cmdtable

import (
	"fmt"
	"sort"
)

// Well-known labels consumed by the snapshot layer. The sampled clock and
// hostname come from the device itself so that snapshots line up with the
// device's view of time even when the collection host drifts.
const (
	TimestampLabel = "timestamp"
	HostnameLabel  = "etcHostname"
	VersionLabel   = "showVersion"
)

// Table maps a command label to the argv of its shell invocation. The first
// element is the executable, the rest are arguments.
type Table map[string][]string

// Labels returns all command labels in sorted order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t))
	for label := range t {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Validate checks that every entry has a non-empty argv.
func (t Table) Validate() error {
	for label, argv := range t {
		if label == "" {
			return fmt.Errorf("command with empty label")
		}
		if len(argv) == 0 || argv[0] == "" {
			return fmt.Errorf("command %q has empty argv", label)
		}
	}
	return nil
}

// Clone returns a shallow copy of the table. Argv slices are shared; callers
// must not mutate them.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for label, argv := range t {
		out[label] = argv
	}
	return out
}
