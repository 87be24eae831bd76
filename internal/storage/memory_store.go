package storage

import (
	"encoding/json"

	"weeklog/internal/logger"
	"weeklog/internal/models"
)

// MemoryStore keeps the document for the lifetime of the process. It is the
// fallback when no durable backend is writable, and the backing store used by
// tests. Documents are stored serialized so Load always hands out an
// independent copy, matching the isolation of the durable stores.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() *models.Document {
	if s.data == nil {
		return models.Default()
	}
	doc := &models.Document{}
	if err := json.Unmarshal(s.data, doc); err != nil || !doc.Valid() {
		logger.Error("In-memory document is corrupt, resetting", "error", err)
		s.data = nil
		return models.Default()
	}
	doc.Normalize()
	return doc
}

func (s *MemoryStore) Save(doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

func (s *MemoryStore) Clear() error {
	s.data = nil
	return nil
}

func (s *MemoryStore) Path() string {
	return "(in-memory)"
}
