package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"weeklog/internal/logger"
	"weeklog/internal/models"
)

// PostgresStore is the remote counterpart of SQLiteStore: the same single-row
// document table, reachable from more than one device. There is no conflict
// detection; concurrent writers are last-write-wins, as documented for the
// whole storage layer.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS document (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS document_backup (
	id SERIAL PRIMARY KEY,
	data TEXT NOT NULL,
	backed_up_at TEXT NOT NULL
);`

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	if HasEmbeddedCredentials(connStr) {
		return nil, fmt.Errorf("connection strings with embedded credentials are not allowed; use environment variables or .pgpass")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{connStr: connStr, db: db}, nil
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) Load() *models.Document {
	var raw string
	err := s.db.QueryRow(`SELECT data FROM document WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.Default()
	}
	if err != nil {
		logger.Error("Failed to read document, using defaults", "error", err)
		return models.Default()
	}

	doc := &models.Document{}
	if err := json.Unmarshal([]byte(raw), doc); err != nil || !doc.Valid() {
		logger.Error("Stored document is corrupt, backing up and resetting", "error", err)
		s.backupCorrupt(raw)
		return models.Default()
	}

	doc.Normalize()
	return doc
}

func (s *PostgresStore) Save(doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO document (id, data, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		logger.Error("Failed to write document", "error", err)
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM document`); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *PostgresStore) Path() string {
	return s.connStr
}

// Close releases the database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) backupCorrupt(raw string) {
	_, err := s.db.Exec(`INSERT INTO document_backup (data, backed_up_at) VALUES ($1, $2)`,
		raw, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		logger.Error("Failed to back up corrupt document", "error", err)
		return
	}
	logger.Info("Corrupt document backed up")
}
