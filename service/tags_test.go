package service

import (
	"errors"
	"testing"
)

func TestCreateTag(t *testing.T) {
	svc, _ := newTestService(t)

	tag, err := svc.CreateTag(TagInput{Name: "Urgent", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if tag.ID == "" {
		t.Error("Expected generated id")
	}
	if tag.Color != "#ff0000" {
		t.Errorf("Expected given color, got %s", tag.Color)
	}
}

func TestCreateTagDefaultColor(t *testing.T) {
	svc, _ := newTestService(t)

	tag, err := svc.CreateTag(TagInput{Name: "Urgent"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if tag.Color != DefaultTagColor {
		t.Errorf("Expected default color %s, got %s", DefaultTagColor, tag.Color)
	}
}

func TestCreateTagDuplicateNameCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateTag(TagInput{Name: "Urgent"}); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if _, err := svc.CreateTag(TagInput{Name: "URGENT"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected conflict, got %v", err)
	}
}

func TestCreateTagRequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateTag(TagInput{Name: "  "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
}

func TestDeleteTagStripsContractReferences(t *testing.T) {
	svc, _ := newTestService(t)

	keep, err := svc.CreateTag(TagInput{Name: "Keep"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	drop, err := svc.CreateTag(TagInput{Name: "Drop"})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	tagIDs := []string{keep.ID, drop.ID}
	result, err := svc.CreateContract(ContractInput{
		Description:    "Roof",
		ContractAmount: 1000,
		Vendor:         VendorRef{New: &VendorInput{CompanyName: "Acme"}},
		TagIDs:         &tagIDs,
	})
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}

	if err := svc.DeleteTag(drop.ID); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}

	view, err := svc.GetContract(result.Contract.ID)
	if err != nil {
		t.Fatalf("GetContract: %v", err)
	}
	if len(view.TagIDs) != 1 || view.TagIDs[0] != keep.ID {
		t.Errorf("Expected deleted tag stripped, got %v", view.TagIDs)
	}

	tags, _ := svc.ListTags()
	if len(tags) != 1 {
		t.Errorf("Expected 1 tag remaining, got %d", len(tags))
	}
}

func TestDeleteTagNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.DeleteTag("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected not found, got %v", err)
	}
}
