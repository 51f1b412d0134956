package index

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	older := Entry{
		File:      "core-rtr1_cmds_260825-120000.json.xz",
		Host:      "core-rtr1",
		Created:   time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		SizeBytes: 2048,
		Commands:  79,
	}
	newer := Entry{
		File:      "edge-rtr2_cmds_260825-130000.json.xz",
		Host:      "edge-rtr2",
		Label:     "pretest_",
		Created:   time.Date(2026, 8, 25, 13, 0, 0, 0, time.UTC),
		SizeBytes: 4096,
		Commands:  79,
	}

	_, err := db.Record(older)
	require.NoError(t, err)
	id, err := db.Record(newer)
	require.NoError(t, err)
	assert.Positive(t, id)

	entries, err := db.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "edge-rtr2", entries[0].Host)
	assert.Equal(t, "core-rtr1", entries[1].Host)
	assert.Equal(t, int64(2048), entries[1].SizeBytes)
	assert.Equal(t, 79, entries[0].Commands)
}

func TestSearch(t *testing.T) {
	db := openTestDB(t)

	for _, e := range []Entry{
		{File: "core-rtr1_cmds_1.json.xz", Host: "core-rtr1", Created: time.Now()},
		{File: "edge-rtr2_cmds_1.json.xz", Host: "edge-rtr2", Created: time.Now()},
	} {
		_, err := db.Record(e)
		require.NoError(t, err)
	}

	hits, err := db.Search("edge")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "edge-rtr2", hits[0].Host)

	all, err := db.Search("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := db.Search("zzzzqqq")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEntries_Table(t *testing.T) {
	es := Entries{{
		File:     "f.json.xz",
		Host:     "h",
		Created:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Commands: 7,
	}}

	assert.Len(t, es.TableHeader(), 5)
	rows := es.TableRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "h", rows[0][1])
	assert.Equal(t, "7", rows[0][3])
}
