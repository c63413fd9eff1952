package service

import "context"

// BlobRemover deletes stored binaries. Removal is always best-effort from
// the document's point of view: metadata stays authoritative even when the
// blob cannot be removed.
type BlobRemover interface {
	Remove(ctx context.Context, objectName string) error
}

// Service exposes every operation on the shared document. Each call is one
// logical transaction: reload the document, validate, apply a single
// change, persist atomically, return the populated view.
type Service struct {
	store *DocumentStore
	blobs BlobRemover
}

func NewService(store *DocumentStore, blobs BlobRemover) *Service {
	return &Service{store: store, blobs: blobs}
}

// Store exposes the underlying document store, mainly for health checks
// and tests.
func (s *Service) Store() *DocumentStore {
	return s.store
}
