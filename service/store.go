package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/potorik/construction-expense-tracker/config"
	"github.com/potorik/construction-expense-tracker/model"
)

// DocumentStore persists the whole domain document as one JSON file.
// Every operation reloads the document fresh; there is no long-lived
// in-memory copy. Mutations are serialized through the write lock so a
// single process never races itself on the read-modify-write cycle.
type DocumentStore struct {
	path string
	mu   sync.RWMutex
}

func NewDocumentStore(cfg *config.StoreConfig) *DocumentStore {
	return &DocumentStore{path: cfg.DataFile}
}

func emptyDocument() *model.Document {
	return &model.Document{
		Vendors:   []model.Vendor{},
		Contracts: []model.Contract{},
		Tags:      []model.Tag{},
	}
}

// Load reads the current document. A missing file yields an empty
// document; a file that exists but fails to parse is corrupt data and is
// never silently replaced.
func (s *DocumentStore) Load() (*model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *DocumentStore) load() (*model.Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return emptyDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, s.path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorruptData, s.path, err)
	}

	// Tolerate documents written before a collection existed.
	if doc.Vendors == nil {
		doc.Vendors = []model.Vendor{}
	}
	if doc.Contracts == nil {
		doc.Contracts = []model.Contract{}
	}
	if doc.Tags == nil {
		doc.Tags = []model.Tag{}
	}
	return &doc, nil
}

// Save writes the document atomically: marshal to a side file, then rename
// into place, so a crash mid-write never leaves a truncated document.
func (s *DocumentStore) Save(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *DocumentStore) save(doc *model.Document) error {
	doc.LastUpdated = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling document: %v", ErrStorage, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrStorage, dir, err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replacing %s: %v", ErrStorage, s.path, err)
	}
	return nil
}

// Update runs one load/mutate/save transaction under the write lock. If fn
// returns an error nothing is persisted and the document on disk is exactly
// as it was before the call.
func (s *DocumentStore) Update(fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.save(doc); err != nil {
		slog.Error("document save failed", "path", s.path, "error", err)
		return err
	}
	return nil
}
