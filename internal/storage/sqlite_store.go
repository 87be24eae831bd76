package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"weeklog/internal/logger"
	"weeklog/internal/models"
)

// SQLiteStore keeps the document as a single serialized row. The table layout
// mirrors the JSON file store's contract: one blob, plus a backup table that
// preserves corrupt blobs before they are replaced with defaults.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS document (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS document_backup (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	data TEXT NOT NULL,
	backed_up_at TEXT NOT NULL
);`

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{path: path, db: db}, nil
}

func (s *SQLiteStore) Load() *models.Document {
	var raw string
	err := s.db.QueryRow(`SELECT data FROM document WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.Default()
	}
	if err != nil {
		logger.Error("Failed to read document, using defaults", "path", s.path, "error", err)
		return models.Default()
	}

	doc := &models.Document{}
	if err := json.Unmarshal([]byte(raw), doc); err != nil || !doc.Valid() {
		logger.Error("Stored document is corrupt, backing up and resetting", "path", s.path, "error", err)
		s.backupCorrupt(raw)
		return models.Default()
	}

	doc.Normalize()
	return doc
}

func (s *SQLiteStore) Save(doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO document (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if isStorageFull(err) {
			return fmt.Errorf("%w: %v", ErrStorageFull, err)
		}
		logger.Error("Failed to write document", "path", s.path, "error", err)
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM document`); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle. The CLI process exits right after each
// command, so this is only used by tests.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) backupCorrupt(raw string) {
	_, err := s.db.Exec(`INSERT INTO document_backup (data, backed_up_at) VALUES (?, ?)`,
		raw, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		logger.Error("Failed to back up corrupt document", "path", s.path, "error", err)
		return
	}
	logger.Info("Corrupt document backed up", "path", s.path)
}
