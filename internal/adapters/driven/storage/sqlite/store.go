package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/linkscope/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
)

// Store owns the SQLite connection and hands out store interfaces over it.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.linkscope/data/snapshots.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".linkscope", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "snapshots.db")

	// WAL lets the watcher write while a report is being read.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SnapshotStore returns a SnapshotStore interface backed by this store.
func (s *Store) SnapshotStore() driven.SnapshotStore {
	return &snapshotStore{store: s}
}

// migrate runs all pending migrations, recording each applied version.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_snapshots.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ==================== Snapshot Store ====================

// snapshotStore implements driven.SnapshotStore.
type snapshotStore struct {
	store *Store
}

var _ driven.SnapshotStore = (*snapshotStore)(nil)

// Save stores or replaces a snapshot.
func (s *snapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || snapshot.ID == "" {
		return domain.ErrInvalidInput
	}

	contactsJSON, err := json.Marshal(snapshot.Contacts)
	if err != nil {
		return fmt.Errorf("marshalling contacts: %w", err)
	}
	analyticsJSON, err := json.Marshal(snapshot.Analytics)
	if err != nil {
		return fmt.Errorf("marshalling analytics: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, source, created_at, total_connections, engagement_rate, contacts, analytics)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			created_at = excluded.created_at,
			total_connections = excluded.total_connections,
			engagement_rate = excluded.engagement_rate,
			contacts = excluded.contacts,
			analytics = excluded.analytics
	`, snapshot.ID, snapshot.Source, snapshot.CreatedAt.UTC().UnixNano(),
		snapshot.Analytics.TotalConnections, snapshot.Analytics.EngagementRate,
		string(contactsJSON), string(analyticsJSON))
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by ID.
func (s *snapshotStore) Get(ctx context.Context, id string) (*domain.Snapshot, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source, created_at, contacts, analytics
		FROM snapshots WHERE id = ?
	`, id)
	return scanSnapshot(row)
}

// Latest retrieves the most recently created snapshot.
func (s *snapshotStore) Latest(ctx context.Context) (*domain.Snapshot, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source, created_at, contacts, analytics
		FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1
	`)
	return scanSnapshot(row)
}

// List returns listing views of all snapshots, newest first.
func (s *snapshotStore) List(ctx context.Context) ([]domain.SnapshotInfo, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source, created_at, total_connections, engagement_rate
		FROM snapshots ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	infos := make([]domain.SnapshotInfo, 0)
	for rows.Next() {
		var info domain.SnapshotInfo
		var createdAt int64
		if err := rows.Scan(&info.ID, &info.Source, &createdAt, &info.TotalConnections, &info.EngagementRate); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		info.CreatedAt = time.Unix(0, createdAt).UTC()
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return infos, nil
}

// Delete removes a snapshot.
func (s *snapshotStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSnapshot(row *sql.Row) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	var createdAt int64
	var contactsJSON, analyticsJSON string
	if err := row.Scan(&snap.ID, &snap.Source, &createdAt, &contactsJSON, &analyticsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	snap.CreatedAt = time.Unix(0, createdAt).UTC()
	if err := json.Unmarshal([]byte(contactsJSON), &snap.Contacts); err != nil {
		return nil, fmt.Errorf("unmarshaling contacts: %w", err)
	}
	if err := json.Unmarshal([]byte(analyticsJSON), &snap.Analytics); err != nil {
		return nil, fmt.Errorf("unmarshaling analytics: %w", err)
	}
	return &snap, nil
}
