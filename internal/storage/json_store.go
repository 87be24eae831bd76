package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"weeklog/internal/constants"
	"weeklog/internal/logger"
	"weeklog/internal/models"
)

// JSONStore persists the document as one indented JSON file. A blob that does
// not parse, or parses but lacks the required top-level fields, is preserved
// under <path>.backup before defaults take its place.
type JSONStore struct {
	path string
}

// NewJSONStore probes that the target directory is writable and returns the
// store. A probe failure is the caller's cue to fall back to memory.
func NewJSONStore(path string) (*JSONStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	probe := filepath.Join(dir, ".weeklog-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0600); err != nil {
		return nil, fmt.Errorf("storage probe failed: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		logger.Debug("Could not remove storage probe file", "path", probe, "error", err)
	}

	return &JSONStore{path: path}, nil
}

func (s *JSONStore) Load() *models.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error("Failed to read document, using defaults", "path", s.path, "error", err)
		}
		return models.Default()
	}

	doc := &models.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		logger.Error("Stored document is corrupt, backing up and resetting", "path", s.path, "error", err)
		s.backupCorrupt(raw)
		return models.Default()
	}

	if !doc.Valid() {
		logger.Warn("Stored document is missing required fields, backing up and resetting", "path", s.path)
		s.backupCorrupt(raw)
		return models.Default()
	}

	doc.Normalize()
	return doc
}

func (s *JSONStore) Save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		if isStorageFull(err) {
			return fmt.Errorf("%w: %v", ErrStorageFull, err)
		}
		logger.Error("Failed to write document", "path", s.path, "error", err)
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (s *JSONStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

// backupCorrupt preserves the raw bytes of an unreadable document so nothing
// is silently destroyed by the reset to defaults.
func (s *JSONStore) backupCorrupt(raw []byte) {
	backupPath := s.path + constants.BackupSuffix
	if err := os.WriteFile(backupPath, raw, 0600); err != nil {
		logger.Error("Failed to back up corrupt document", "path", backupPath, "error", err)
		return
	}
	logger.Info("Corrupt document backed up", "path", backupPath)
}

func isStorageFull(err error) bool {
	return errors.Is(err, syscall.ENOSPC)
}
