package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/AntiHeld889/beamerctl/internal/model"
)

// SQLiteStorage implements Storage using a SQLite database. Playlist order
// is kept in a separate position-indexed table so the draft order
// round-trips exactly.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS playlists (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL UNIQUE,
			loop_video TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS playlist_videos (
			playlist_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			PRIMARY KEY (playlist_id, position),
			FOREIGN KEY (playlist_id) REFERENCES playlists(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_playlist_videos_playlist ON playlist_videos(playlist_id);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads all playlist drafts from the SQLite database.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	store := model.NewStore()

	rows, err := s.db.Query(`
		SELECT id, name, loop_video
		FROM playlists
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.LoopVideo); err != nil {
			return nil, err
		}
		p.Videos = []string{}
		store.Playlists = append(store.Playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	videoStmt, err := s.db.Prepare(`
		SELECT path
		FROM playlist_videos
		WHERE playlist_id = ?
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer videoStmt.Close()

	for i := range store.Playlists {
		vrows, err := videoStmt.Query(store.Playlists[i].ID)
		if err != nil {
			return nil, err
		}
		for vrows.Next() {
			var path string
			if err := vrows.Scan(&path); err != nil {
				vrows.Close()
				return nil, err
			}
			store.Playlists[i].Videos = append(store.Playlists[i].Videos, path)
		}
		if err := vrows.Err(); err != nil {
			vrows.Close()
			return nil, err
		}
		vrows.Close()
	}

	return store, nil
}

// Save writes the store to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(store *model.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Clear existing data; playlist_videos goes with it via cascade.
	if _, err := tx.Exec("DELETE FROM playlists"); err != nil {
		return err
	}

	playlistStmt, err := tx.Prepare(`
		INSERT INTO playlists (id, name, loop_video)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer playlistStmt.Close()

	videoStmt, err := tx.Prepare(`
		INSERT INTO playlist_videos (playlist_id, position, path)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer videoStmt.Close()

	for _, p := range store.Playlists {
		if _, err := playlistStmt.Exec(p.ID, p.Name, p.LoopVideo); err != nil {
			return err
		}
		for pos, path := range p.Videos {
			if _, err := videoStmt.Exec(p.ID, pos, path); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default database path: ~/.config/beamerctl/playlists.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "beamerctl", "playlists.db"), nil
}
