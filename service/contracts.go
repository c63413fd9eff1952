package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/model"
	"github.com/potorik/construction-expense-tracker/pkg/logger"
)

// ContractInput carries the writable contract fields. Vendor is a tagged
// reference: an existing id or an inline vendor payload, never both. TagIDs
// is a pointer so update can tell "field absent, keep existing tags" apart
// from "field present, replace the list".
type ContractInput struct {
	Description         string
	ContractAmount      float64
	EstimatedCompletion string
	Vendor              VendorRef
	TagIDs              *[]string
}

func (in *ContractInput) validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if in.ContractAmount < 0 {
		return fmt.Errorf("%w: contractAmount must not be negative", ErrValidation)
	}
	return nil
}

// ContractResult is the outcome of a contract create: the populated view
// plus, when the vendor was created inline, the new vendor so callers can
// refresh their own vendor list.
type ContractResult struct {
	Contract  model.ViewContract `json:"contract"`
	NewVendor *model.Vendor      `json:"newVendor,omitempty"`
}

// ListContracts returns every contract as a populated view.
func (s *Service) ListContracts() ([]model.ViewContract, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	views := make([]model.ViewContract, len(doc.Contracts))
	for i := range doc.Contracts {
		views[i] = populateContract(doc, &doc.Contracts[i])
	}
	return views, nil
}

// GetContract returns one contract as a populated view.
func (s *Service) GetContract(id string) (*model.ViewContract, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	contract := findContract(doc, id)
	if contract == nil {
		return nil, fmt.Errorf("%w: contract %s", ErrNotFound, id)
	}
	view := populateContract(doc, contract)
	return &view, nil
}

// CreateContract adds a contract linked to an existing or inline-created
// vendor. Unknown tag ids are dropped, not rejected.
func (s *Service) CreateContract(in ContractInput) (*ContractResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var result ContractResult
	err := s.store.Update(func(doc *model.Document) error {
		vendorID, created, err := resolveVendorRef(doc, in.Vendor)
		if err != nil {
			return err
		}

		tagIDs := []string{}
		if in.TagIDs != nil {
			tagIDs = filterValidTagIDs(doc, *in.TagIDs)
		}

		contract := model.Contract{
			ID:                  uuid.New().String(),
			VendorID:            vendorID,
			Description:         strings.TrimSpace(in.Description),
			ContractAmount:      model.Amount(in.ContractAmount),
			EstimatedCompletion: in.EstimatedCompletion,
			TagIDs:              tagIDs,
			Payments:            []model.Payment{},
			Files:               []model.FileRecord{},
		}
		doc.Contracts = append(doc.Contracts, contract)

		result.Contract = populateContract(doc, &contract)
		result.NewVendor = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateContract rewrites a contract in place. The vendor must already
// exist; there is no inline-creation path on update. When TagIDs is
// present it fully replaces the stored list after filtering; when absent
// the existing tags are preserved.
func (s *Service) UpdateContract(id string, in ContractInput) (*model.ViewContract, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Vendor.ID == "" {
		return nil, fmt.Errorf("%w: vendorId is required", ErrValidation)
	}

	var view model.ViewContract
	err := s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, id)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, id)
		}
		if findVendor(doc, in.Vendor.ID) == nil {
			return fmt.Errorf("%w: vendor %s", ErrNotFound, in.Vendor.ID)
		}

		contract.VendorID = in.Vendor.ID
		contract.Description = strings.TrimSpace(in.Description)
		contract.ContractAmount = model.Amount(in.ContractAmount)
		contract.EstimatedCompletion = in.EstimatedCompletion
		if in.TagIDs != nil {
			contract.TagIDs = filterValidTagIDs(doc, *in.TagIDs)
		}

		view = populateContract(doc, contract)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// DeleteContract removes a contract and best-effort deletes its stored
// binaries. A blob that cannot be removed is logged and skipped; it never
// blocks the record deletion.
func (s *Service) DeleteContract(ctx context.Context, id string) error {
	return s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, id)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, id)
		}

		for _, f := range contract.Files {
			if err := s.blobs.Remove(ctx, f.Filename); err != nil {
				logger.Warn(ctx, "failed to delete stored file",
					"contract_id", id,
					"filename", f.Filename,
					"error", err,
				)
			}
		}

		kept := doc.Contracts[:0]
		for _, c := range doc.Contracts {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.Contracts = kept
		return nil
	})
}
