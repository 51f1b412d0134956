/*
Copyright © 2025 LJ Wobker
SPDX-License-Identifier: Apache-2.0
*/
package oci

import (
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/ljwobker/npusnap/pkg/errors"
)

// URIScheme is the URI scheme for OCI registry targets
// (e.g. "oci://ghcr.io/org/snapshots:core-rtr1").
const URIScheme = "oci://"

// Reference is a parsed push target: either an OCI registry reference or a
// local directory path.
type Reference struct {
	// IsOCI indicates an OCI registry reference (true) or local path (false).
	IsOCI bool
	// Registry is the registry host (e.g. "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the repository path (e.g. "netops/npusnap").
	Repository string
	// Tag is the artifact tag. Empty means the caller should apply a
	// default (typically the device hostname or tool version).
	Tag string
	// LocalPath is set for non-OCI targets.
	LocalPath string
}

// ParseTarget parses a target string, detecting OCI URIs. Plain strings are
// treated as local directory paths.
func ParseTarget(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return &Reference{
			IsOCI:     false,
			LocalPath: target,
		}, nil
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}

	out := &Reference{
		IsOCI:      true,
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		out.Tag = tagged.Tag()
	}
	return out, nil
}
