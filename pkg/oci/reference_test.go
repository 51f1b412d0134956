/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package oci

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget_LocalPath(t *testing.T) {
	ref, err := ParseTarget("/var/xr/disk1/envSnaps")
	require.NoError(t, err)

	assert.False(t, ref.IsOCI)
	assert.Equal(t, "/var/xr/disk1/envSnaps", ref.LocalPath)
}

func TestParseTarget_OCI(t *testing.T) {
	ref, err := ParseTarget("oci://ghcr.io/netops/snapshots:core-rtr1")
	require.NoError(t, err)

	assert.True(t, ref.IsOCI)
	assert.Equal(t, "ghcr.io", ref.Registry)
	assert.Equal(t, "netops/snapshots", ref.Repository)
	assert.Equal(t, "core-rtr1", ref.Tag)
}

func TestParseTarget_OCI_NoTag(t *testing.T) {
	ref, err := ParseTarget("oci://localhost:5000/netops/snapshots")
	require.NoError(t, err)

	assert.True(t, ref.IsOCI)
	assert.Equal(t, "localhost:5000", ref.Registry)
	assert.Equal(t, "netops/snapshots", ref.Repository)
	assert.Empty(t, ref.Tag)
}

func TestParseTarget_Invalid(t *testing.T) {
	_, err := ParseTarget("oci://not a valid ref!!")
	assert.Error(t, err)
}

func TestPush_RequiresTag(t *testing.T) {
	_, err := Push(context.Background(), PushOptions{
		SourceDir:  t.TempDir(),
		Registry:   "localhost:5000",
		Repository: "netops/snapshots",
	})
	assert.Error(t, err)
}
