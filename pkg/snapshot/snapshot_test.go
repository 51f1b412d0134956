package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljwobker/npusnap/pkg/cmdtable"
)

func TestNew(t *testing.T) {
	snap := New("1.2.3", "pretest_")

	assert.Equal(t, APIVersion, snap.APIVersion)
	assert.Equal(t, KindSnapshot, snap.Kind)
	assert.Equal(t, "npusnap/1.2.3", snap.Metadata.Tool)
	assert.Equal(t, "pretest_", snap.Metadata.Label)
	assert.NotEmpty(t, snap.Metadata.ID)
	assert.NotNil(t, snap.Outputs)
}

func TestSnapshot_Stamp_FromDevice(t *testing.T) {
	snap := New("dev", "")
	snap.Outputs = map[string]string{
		cmdtable.TimestampLabel: "1724567890\n",
		cmdtable.HostnameLabel:  "core-rtr1\n",
		cmdtable.VersionLabel:   "Cisco IOS XR Software, Version 7.5.2\n",
	}

	snap.Stamp()

	assert.Equal(t, time.Unix(1724567890, 0).UTC(), snap.Metadata.Created)
	assert.Equal(t, "core-rtr1", snap.Metadata.Hostname)
	assert.Equal(t, "7.5.2", snap.Metadata.SoftwareVersion)
}

func TestSnapshot_Stamp_Fallbacks(t *testing.T) {
	snap := New("dev", "")
	snap.Outputs = map[string]string{} // device gave us nothing

	before := time.Now().Add(-time.Minute)
	snap.Stamp()

	assert.True(t, snap.Metadata.Created.After(before), "should fall back to local clock")
	assert.NotEmpty(t, snap.Metadata.Hostname, "should fall back to local hostname")
	assert.Empty(t, snap.Metadata.SoftwareVersion)
}

func TestSnapshot_Filename(t *testing.T) {
	snap := New("dev", "drops_")
	snap.Metadata.Hostname = "core-rtr1"
	snap.Metadata.Created = time.Date(2026, 8, 25, 14, 30, 5, 0, time.UTC)

	assert.Equal(t, "drops_core-rtr1_cmds_260825-143005", snap.Filename())
}

func TestSnapshot_Filename_SanitizesHostname(t *testing.T) {
	snap := New("dev", "")
	snap.Outputs = map[string]string{
		cmdtable.TimestampLabel: "1724567890",
		cmdtable.HostnameLabel:  "bad host/name",
	}
	snap.Stamp()

	assert.Equal(t, "bad-host-name", snap.Metadata.Hostname)
}

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"1724567890", true},
		{"1724567890\n", true},
		{" 1724567890 ", true},
		{"", false},
		{"abc", false},
		{"-5", false},
		{"0", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			ts, ok := parseEpoch(tc.input)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, time.UTC, ts.Location())
			}
		})
	}
}
