// Package sqlite implements the durable note store on a single SQLite
// database file.
//
// The adapter uses modernc.org/sqlite, a pure Go driver that needs no CGO.
// The database runs in WAL mode so readers interleave safely with a pending
// writer; SQLite's own locking provides the single-writer guarantee. The
// schema is managed through versioned migrations embedded in the binary.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/quillstack/quill/pkg/storage"
	"github.com/quillstack/quill/pkg/storage/sqlite/migrations"
)

// Config holds the configuration for the sqlite store.
type Config struct {
	// Path is the database file. Parent directories are created as needed.
	Path string

	// Logger receives watcher diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Store implements storage.Store backed by a SQLite database.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
}

var (
	_ storage.Store         = (*Store)(nil)
	_ storage.ChangeWatcher = (*Store)(nil)
)

// Open opens (creating if necessary) the database at cfg.Path and brings
// the schema up to date. A failure here is not recoverable by callers:
// without a store there is no usable degraded mode.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: cfg.Path, logger: cfg.Logger}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ScanAll returns every stored record. Order is unspecified; the data
// source sorts.
func (s *Store) ScanAll(ctx context.Context) ([]storage.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, content, created_at, seq FROM notes`)
	if err != nil {
		return nil, &storage.Error{Op: "scan", Err: err}
	}
	defer rows.Close()

	var records []storage.Record
	for rows.Next() {
		var (
			r     storage.Record
			nanos int64
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Content, &nanos, &r.Seq); err != nil {
			return nil, &storage.Error{Op: "scan", Err: err}
		}
		r.CreatedAt = time.Unix(0, nanos)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &storage.Error{Op: "scan", Err: err}
	}
	return records, nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id string) (storage.Record, bool, error) {
	var (
		r     storage.Record
		nanos int64
	)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, seq FROM notes WHERE id = ?`, id)
	if err := row.Scan(&r.ID, &r.Title, &r.Content, &nanos, &r.Seq); err != nil {
		if err == sql.ErrNoRows {
			return storage.Record{}, false, nil
		}
		return storage.Record{}, false, &storage.Error{Op: "get", Err: err}
	}
	r.CreatedAt = time.Unix(0, nanos)
	return r, true, nil
}

// Put inserts or replaces the record identified by r.ID. A new record gets
// the next insertion sequence; a replacement keeps the existing one.
func (s *Store) Put(ctx context.Context, r storage.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, created_at, seq)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM notes))
		ON CONFLICT (id) DO UPDATE SET
			title      = excluded.title,
			content    = excluded.content,
			created_at = excluded.created_at`,
		r.ID, r.Title, r.Content, r.CreatedAt.UnixNano())
	if err != nil {
		return &storage.Error{Op: "put", Err: err}
	}
	return nil
}

// Replace overwrites title and content of an existing record in a single
// statement, leaving created_at and seq untouched. Reports whether it
// existed.
func (s *Store) Replace(ctx context.Context, r storage.Record) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ? WHERE id = ?`,
		r.Title, r.Content, r.ID)
	if err != nil {
		return false, &storage.Error{Op: "replace", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &storage.Error{Op: "replace", Err: err}
	}
	return n > 0, nil
}

// Remove deletes a record by ID and reports whether it existed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, &storage.Error{Op: "remove", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &storage.Error{Op: "remove", Err: err}
	}
	return n > 0, nil
}

// migrate applies every pending .up.sql migration in version order.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		version, err := migrationVersion(name)
		if err != nil {
			return err
		}
		if version <= current {
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(script)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", name, err)
		}
	}
	return nil
}

// migrationVersion extracts the numeric prefix of a migration filename,
// e.g. "0001_create_notes.up.sql" -> 1.
func migrationVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, fmt.Errorf("malformed migration name: %s", name)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("malformed migration version in %s: %w", name, err)
	}
	return version, nil
}
