package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/pkg/logger"
	"github.com/potorik/construction-expense-tracker/service"
)

// BlobStore is the binary storage collaborator. The handler stores the
// upload first and only then records the metadata; on a failed record it
// removes the blob again so no orphan survives.
type BlobStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectName string) error
	PresignedURL(ctx context.Context, objectName string) (string, error)
}

type FileHandler struct {
	svc   *service.Service
	blobs BlobStore
}

func NewFileHandler(svc *service.Service, blobs BlobStore) *FileHandler {
	return &FileHandler{svc: svc, blobs: blobs}
}

// Upload stores a contract document and attaches its metadata
func (h *FileHandler) Upload(c *gin.Context) {
	contractID := c.Param("id")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Storage name is unique per upload; the original name is kept for
	// display only.
	objectName := uuid.New().String() + filepath.Ext(header.Filename)

	ctx := c.Request.Context()
	if err := h.blobs.Upload(ctx, objectName, file, header.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}

	record, err := h.svc.AddFileRecord(contractID, objectName, header.Filename)
	if err != nil {
		// The blob is already stored but nothing records it; remove it so
		// it doesn't linger as an orphan.
		if removeErr := h.blobs.Remove(ctx, objectName); removeErr != nil {
			logger.Warn(ctx, "orphan cleanup failed",
				"filename", objectName,
				"error", removeErr,
			)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Delete removes file metadata, then best-effort deletes the binary
func (h *FileHandler) Delete(c *gin.Context) {
	warning, err := h.svc.DeleteFileRecord(c.Request.Context(), c.Param("id"), c.Param("fileId"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"message": "File deleted"}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadURL returns a time-limited link to the stored binary
func (h *FileHandler) DownloadURL(c *gin.Context) {
	url, err := h.blobs.PresignedURL(c.Request.Context(), c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate URL: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
