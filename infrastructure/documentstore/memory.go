package documentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tiempos-pupi/tiempos-api/pkg/utils"
)

// MemoryStore es una implementación en memoria de Store, usada en pruebas.
// Los documentos se clonan vía JSON en cada lectura y escritura para que el
// comportamiento de tipos sea el mismo que contra la base real.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Entry)}
}

func (s *MemoryStore) GetDocument(ctx context.Context, collection, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.collections[collection] {
		if entry.ID == id {
			return cloneDocument(entry.Data)
		}
	}
	return nil, nil
}

func (s *MemoryStore) SetDocument(ctx context.Context, collection, id string, patch Document, merge bool) error {
	clone, err := cloneDocument(patch)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.collections[collection]
	for i, entry := range entries {
		if entry.ID != id {
			continue
		}

		if !merge {
			entries[i].Data = clone
			return nil
		}

		for key, value := range clone {
			entry.Data[key] = value
		}
		return nil
	}

	s.collections[collection] = append(entries, Entry{ID: id, Data: clone})
	return nil
}

func (s *MemoryStore) ListDocuments(ctx context.Context, collection string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.collections[collection]))
	for _, entry := range s.collections[collection] {
		clone, err := cloneDocument(entry.Data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: entry.ID, Data: clone})
	}
	return entries, nil
}

func (s *MemoryStore) AddDocument(ctx context.Context, collection string, doc Document) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	if err := s.SetDocument(ctx, collection, id, doc, false); err != nil {
		return "", err
	}
	return id, nil
}

func (s *MemoryStore) DeleteDocument(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.collections[collection]
	for i, entry := range entries {
		if entry.ID == id {
			s.collections[collection] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func cloneDocument(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error al clonar el documento: %w", err)
	}

	clone := make(Document)
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, fmt.Errorf("error al clonar el documento: %w", err)
	}
	return clone, nil
}
