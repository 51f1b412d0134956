/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/

// Package oci pushes snapshot archives to OCI registries using ORAS.
//
// Devices in a lab or fleet write snapshots locally; the push command rolls
// a snapshot directory into a single-layer OCI artifact so archives can be
// collected centrally with ordinary registry tooling:
//
//	npusnap push --output-dir /var/xr/disk1/envSnaps oci://registry.lab/netops/snapshots:core-rtr1
package oci
