package storage

import (
	"errors"
	"strings"

	"weeklog/internal/logger"
	"weeklog/internal/models"
)

// ErrStorageFull marks a save failure caused by a capacity condition (disk
// full, quota exceeded). The CLI shows a distinct message for it; every other
// save failure is logged and reported as a plain failure.
var ErrStorageFull = errors.New("storage full")

// Provider is the durable owner of the document. Load never fails: missing or
// corrupt data degrades to the structurally-empty default so callers always
// receive a usable document.
type Provider interface {
	Load() *models.Document
	Save(doc *models.Document) error
	Clear() error
	Path() string
}

// Open selects a backend by the config value's shape: a PostgreSQL connection
// string, a .db path for SQLite, or a plain path for the JSON file store. If
// the chosen backend is not usable, it logs one warning and falls back to a
// process-lifetime in-memory store; no per-operation errors are surfaced for
// the fallback itself.
func Open(config string) Provider {
	var (
		p   Provider
		err error
	)
	switch {
	case strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://"):
		p, err = NewPostgresStore(config)
	case strings.HasSuffix(config, ".db"):
		p, err = NewSQLiteStore(config)
	default:
		p, err = NewJSONStore(config)
	}
	if err != nil {
		logger.Warn("Durable storage unavailable, using in-memory store for this session",
			"config", config, "error", err)
		return NewMemoryStore()
	}
	return p
}
