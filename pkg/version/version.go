package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Error types for version parsing failures.
var (
	ErrEmptyVersion = errors.New("version string is empty")
	ErrNonNumeric   = errors.New("version component is not numeric")
)

// Version is a lenient dotted version as printed by XR software banners,
// e.g. "7.5.2", "24.1.1" or "7.11.1.22I". Components beyond the third and
// any non-numeric trailer are preserved in Extras.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Extras stores trailing metadata like ".22I" or "-rc1".
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the dotted form including any extras.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.Extras)
}

// Parse parses a version string. A leading "v" is stripped. Up to three
// numeric dotted components are parsed; the remainder (extra components,
// engineering-build suffixes) is kept verbatim in Extras.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "v"))
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version
	parts := strings.Split(s, ".")
	targets := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		if i >= len(targets) {
			v.Extras = "." + strings.Join(parts[i:], ".")
			break
		}
		// split a suffix like "2-rc1" into component and extras
		num := part
		if idx := strings.IndexAny(part, "-+"); idx > 0 {
			num = part[:idx]
			v.Extras = part[idx:]
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			if i == 0 {
				return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
			}
			v.Extras = "." + strings.Join(parts[i:], ".")
			break
		}
		*targets[i] = n
		if v.Extras != "" && i < len(parts)-1 {
			v.Extras += "." + strings.Join(parts[i+1:], ".")
			break
		}
	}
	return v, nil
}

// Compare returns -1 if v < other, 0 if equal, 1 if v > other. Extras are
// ignored; only the numeric components participate.
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// versionLine matches the software version in a show_version banner, e.g.
// "Cisco IOS XR Software, Version 7.5.2" or " Version   : 24.1.1".
var versionLine = regexp.MustCompile(`(?mi)\bVersion\s*:?\s+v?(\d[\w.+-]*)`)

// FromShowVersion extracts the software version from captured show_version
// output. Returns false if no version line is present or parseable.
func FromShowVersion(text string) (Version, bool) {
	m := versionLine.FindStringSubmatch(text)
	if m == nil {
		return Version{}, false
	}
	v, err := Parse(m[1])
	if err != nil {
		return Version{}, false
	}
	return v, true
}
