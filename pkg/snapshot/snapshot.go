package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ljwobker/npusnap/pkg/cmdtable"
	"github.com/ljwobker/npusnap/pkg/version"
)

const (
	// APIVersion identifies the snapshot document schema.
	APIVersion = "npusnap.io/v1"

	// KindSnapshot is the document kind for sampling-round snapshots.
	KindSnapshot = "Snapshot"

	// TimestampLayout is the compact filename timestamp (yymmdd-HHMMSS).
	TimestampLayout = "060102-150405"
)

// Header carries identifying metadata for a serialized snapshot.
type Header struct {
	APIVersion string   `json:"apiVersion" yaml:"apiVersion"`
	Kind       string   `json:"kind" yaml:"kind"`
	Metadata   Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata describes when and where a snapshot was taken.
type Metadata struct {
	// ID uniquely identifies this sampling round.
	ID string `json:"id" yaml:"id"`

	// Created is the snapshot time, preferably the device's own clock.
	Created time.Time `json:"created" yaml:"created"`

	// Hostname is the device hostname, preferably from /etc/hostname
	// as captured on the device.
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`

	// Label is the operator-supplied filename prefix, if any.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// SoftwareVersion is the XR version extracted from show_version output.
	SoftwareVersion string `json:"softwareVersion,omitempty" yaml:"softwareVersion,omitempty"`

	// Tool records the sampler name and version that wrote the snapshot.
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// Snapshot is one completed sampling round: captured command output keyed by
// command label, wrapped with identifying metadata.
type Snapshot struct {
	Header `json:",inline" yaml:",inline"`

	// Outputs maps command label to captured stdout text.
	Outputs map[string]string `json:"outputs" yaml:"outputs"`
}

// New creates an empty snapshot stamped with the local clock. Call Stamp
// after assigning Outputs to prefer device-derived metadata.
func New(toolVersion, label string) *Snapshot {
	return &Snapshot{
		Header: Header{
			APIVersion: APIVersion,
			Kind:       KindSnapshot,
			Metadata: Metadata{
				ID:      uuid.NewString(),
				Created: time.Now().UTC(),
				Label:   label,
				Tool:    "npusnap/" + toolVersion,
			},
		},
		Outputs: make(map[string]string),
	}
}

// Stamp resolves snapshot metadata from the captured command output,
// preferring the device's own clock, hostname, and software banner over the
// local environment. Missing outputs degrade to local fallbacks with a
// warning; they never fail the round.
func (s *Snapshot) Stamp() {
	if ts, ok := parseEpoch(s.Outputs[cmdtable.TimestampLabel]); ok {
		s.Metadata.Created = ts
	} else {
		slog.Warn("sampled clock unavailable, using local clock",
			slog.String("label", cmdtable.TimestampLabel))
		s.Metadata.Created = time.Now().UTC()
	}

	if host := strings.TrimSpace(s.Outputs[cmdtable.HostnameLabel]); host != "" {
		s.Metadata.Hostname = sanitize(host)
	} else if host, err := os.Hostname(); err == nil {
		slog.Warn("device hostname unavailable, using local hostname",
			slog.String("hostname", host))
		s.Metadata.Hostname = sanitize(host)
	}

	if v, ok := version.FromShowVersion(s.Outputs[cmdtable.VersionLabel]); ok {
		s.Metadata.SoftwareVersion = v.String()
	}
}

// Filename returns the snapshot's base filename (no extension):
// <label><hostname>_cmds_<yymmdd-HHMMSS>.
func (s *Snapshot) Filename() string {
	return fmt.Sprintf("%s%s_cmds_%s",
		s.Metadata.Label,
		s.Metadata.Hostname,
		s.Metadata.Created.Format(TimestampLayout))
}

// parseEpoch parses "date +%s" output (epoch seconds) into a UTC time.
func parseEpoch(text string) (time.Time, bool) {
	sec, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || sec <= 0 {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}

// sanitize strips characters that would break a snapshot filename.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', '\t', '\n':
			return '-'
		}
		return r
	}, s)
}
