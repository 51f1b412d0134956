package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceStateCollector_NoUnits(t *testing.T) {
	c := &ServiceStateCollector{}
	out, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestServiceStateCollector_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	c := &ServiceStateCollector{Units: []string{"dbus.service"}}
	out, err := c.Collect(context.Background())
	if err != nil {
		// no systemd on this system (containers, non-Linux)
		t.Skipf("systemd not available: %v", err)
	}

	require.Contains(t, out, ServiceStatePrefix+"dbus.service")
	assert.Contains(t, out[ServiceStatePrefix+"dbus.service"], "active=")
}
