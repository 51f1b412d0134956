package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"7.5.2", Version{Major: 7, Minor: 5, Patch: 2}, false},
		{"v7.5.2", Version{Major: 7, Minor: 5, Patch: 2}, false},
		{"24.1.1.17I", Version{Major: 24, Minor: 1, Patch: 1, Extras: ".17I"}, false},
		{"7.5", Version{Major: 7, Minor: 5}, false},
		{"7", Version{Major: 7}, false},
		{"7.5.2-rc1", Version{Major: 7, Minor: 5, Patch: 2, Extras: "-rc1"}, false},
		{"", Version{}, true},
		{"  ", Version{}, true},
		{"abc", Version{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 7, Minor: 5, Patch: 2}
	assert.Equal(t, "7.5.2", v.String())

	v.Extras = ".22I"
	assert.Equal(t, "7.5.2.22I", v.String())
}

func TestVersion_Compare(t *testing.T) {
	older := Version{Major: 7, Minor: 5, Patch: 2}
	newer := Version{Major: 7, Minor: 11, Patch: 1}

	assert.Equal(t, -1, older.Compare(newer))
	assert.Equal(t, 1, newer.Compare(older))
	assert.Equal(t, 0, older.Compare(older))
}

func TestFromShowVersion(t *testing.T) {
	banner := `Cisco IOS XR Software, Version 7.5.2
Copyright (c) 2013-2022 by Cisco Systems, Inc.

Build Information:
 Built By     : ingunawa
`
	v, ok := FromShowVersion(banner)
	require.True(t, ok)
	assert.Equal(t, "7.5.2", v.String())

	_, ok = FromShowVersion("no version here")
	assert.False(t, ok)

	v, ok = FromShowVersion(" Version      : 24.1.1.17I\n")
	require.True(t, ok)
	assert.Equal(t, 24, v.Major)
	assert.Equal(t, ".17I", v.Extras)
}
