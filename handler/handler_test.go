package handler

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/config"
	"github.com/potorik/construction-expense-tracker/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBlobStore stands in for MinIO in handler tests.
type fakeBlobStore struct {
	mu        sync.Mutex
	uploaded  []string
	removed   []string
	uploadErr error
	removeErr error
}

func (f *fakeBlobStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploaded = append(f.uploaded, objectName)
	return nil
}

func (f *fakeBlobStore) Remove(ctx context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, objectName)
	return nil
}

func (f *fakeBlobStore) PresignedURL(ctx context.Context, objectName string) (string, error) {
	return "http://example.com/" + objectName, nil
}

func newTestService(t *testing.T) (*service.Service, *fakeBlobStore) {
	t.Helper()
	blobs := &fakeBlobStore{}
	store := service.NewDocumentStore(&config.StoreConfig{
		DataFile: filepath.Join(t.TempDir(), "database.json"),
	})
	return service.NewService(store, blobs), blobs
}
