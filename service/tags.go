package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/model"
)

// DefaultTagColor is used when a tag is created without a color.
const DefaultTagColor = "#6c757d"

type TagInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListTags returns every tag in the document.
func (s *Service) ListTags() ([]model.Tag, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Tags, nil
}

// CreateTag adds a tag. Names are unique case-insensitively.
func (s *Service) CreateTag(in TagInput) (*model.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = DefaultTagColor
	}

	tag := model.Tag{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}

	err := s.store.Update(func(doc *model.Document) error {
		for _, t := range doc.Tags {
			if strings.EqualFold(t.Name, name) {
				return fmt.Errorf("%w: tag %q already exists", ErrConflict, t.Name)
			}
		}
		doc.Tags = append(doc.Tags, tag)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag and strips its id from every contract, so no
// contract is left referencing a tag that no longer exists.
func (s *Service) DeleteTag(id string) error {
	return s.store.Update(func(doc *model.Document) error {
		if findTag(doc, id) == nil {
			return fmt.Errorf("%w: tag %s", ErrNotFound, id)
		}

		kept := doc.Tags[:0]
		for _, t := range doc.Tags {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		doc.Tags = kept

		for i := range doc.Contracts {
			ids := doc.Contracts[i].TagIDs[:0]
			for _, tagID := range doc.Contracts[i].TagIDs {
				if tagID != id {
					ids = append(ids, tagID)
				}
			}
			doc.Contracts[i].TagIDs = ids
		}
		return nil
	})
}
