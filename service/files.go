package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/model"
)

// AddFileRecord attaches metadata for an already-stored binary to a
// contract. If the contract is absent the caller still owns the stored
// binary and must clean it up.
func (s *Service) AddFileRecord(contractID, filename, originalFilename string) (*model.FileRecord, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrValidation)
	}

	record := model.FileRecord{
		ID:               uuid.New().String(),
		Filename:         filename,
		OriginalFilename: originalFilename,
	}

	err := s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, contractID)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
		}
		contract.Files = append(contract.Files, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteFileRecord removes the metadata record first, then best-effort
// deletes the underlying binary. A failed blob deletion is returned as a
// warning; the metadata deletion is never rolled back.
func (s *Service) DeleteFileRecord(ctx context.Context, contractID, fileID string) (warning string, err error) {
	var filename string
	err = s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, contractID)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
		}
		for i := range contract.Files {
			if contract.Files[i].ID == fileID {
				filename = contract.Files[i].Filename
				contract.Files = append(contract.Files[:i], contract.Files[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: file %s", ErrNotFound, fileID)
	})
	if err != nil {
		return "", err
	}

	if removeErr := s.blobs.Remove(ctx, filename); removeErr != nil {
		return fmt.Sprintf("file record deleted, but removing stored file %s failed", filename), nil
	}
	return "", nil
}
