package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sahilm/fuzzy"
)

// FileName is the index database filename inside a snapshot directory.
const FileName = "index.db"

// Entry is one recorded snapshot file.
type Entry struct {
	ID        int64
	File      string
	Host      string
	Label     string
	Created   time.Time
	SizeBytes int64
	Commands  int
}

// Entries renders as a table via the serializer's Tabular interface.
type Entries []Entry

// TableHeader implements serializer.Tabular.
func (es Entries) TableHeader() []string {
	return []string{"CREATED", "HOST", "FILE", "COMMANDS", "SIZE"}
}

// TableRows implements serializer.Tabular.
func (es Entries) TableRows() [][]string {
	rows := make([][]string, 0, len(es))
	for _, e := range es {
		rows = append(rows, []string{
			e.Created.UTC().Format(time.RFC3339),
			e.Host,
			e.File,
			strconv.Itoa(e.Commands),
			strconv.FormatInt(e.SizeBytes, 10),
		})
	}
	return rows
}

// DB is a local SQLite index of written snapshots, kept alongside the
// snapshot files so an archive directory stays self-describing.
type DB struct {
	conn *sql.DB
}

// DefaultPath returns the index location for a snapshot directory.
func DefaultPath(outputDir string) string {
	return filepath.Join(outputDir, FileName)
}

// Open opens (creating if necessary) the index database at path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create index directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate index: %w", err)
	}
	return db, nil
}

func (d *DB) migrate() error {
	_, err := d.conn.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			file TEXT NOT NULL,
			host TEXT NOT NULL DEFAULT '',
			label TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			commands INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
		CREATE INDEX IF NOT EXISTS idx_snapshots_host ON snapshots(host);
	`)
	return err
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Record inserts a snapshot entry and returns its row ID.
func (d *DB) Record(e Entry) (int64, error) {
	result, err := d.conn.Exec(
		`INSERT INTO snapshots (file, host, label, created_at, size_bytes, commands)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.File, e.Host, e.Label, e.Created.UTC(), e.SizeBytes, e.Commands,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// List returns all recorded snapshots, newest first.
func (d *DB) List() (Entries, error) {
	rows, err := d.conn.Query(`
		SELECT id, file, host, label, created_at, size_bytes, commands
		FROM snapshots
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries Entries
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.File, &e.Host, &e.Label, &e.Created, &e.SizeBytes, &e.Commands); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Search fuzzy-filters recorded snapshots against the query, matching on
// host, label, and filename. Results come back in match-quality order.
func (d *DB) Search(query string) (Entries, error) {
	all, err := d.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}

	targets := make([]string, len(all))
	for i, e := range all {
		targets[i] = fmt.Sprintf("%s %s %s", e.Host, e.Label, e.File)
	}

	matches := fuzzy.Find(query, targets)
	out := make(Entries, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out, nil
}
