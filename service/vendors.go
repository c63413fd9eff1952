package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/model"
)

// ListVendors returns every vendor in the document.
func (s *Service) ListVendors() ([]model.Vendor, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Vendors, nil
}

// CreateVendor adds a vendor. companyName is required; all string fields
// are trimmed.
func (s *Service) CreateVendor(in VendorInput) (*model.Vendor, error) {
	in = in.trimmed()
	if in.CompanyName == "" {
		return nil, fmt.Errorf("%w: companyName is required", ErrValidation)
	}

	vendor := model.Vendor{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	}

	err := s.store.Update(func(doc *model.Document) error {
		doc.Vendors = append(doc.Vendors, vendor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// UpdateVendor rewrites a vendor's fields. Omitted optional fields keep
// their previous value rather than being cleared.
func (s *Service) UpdateVendor(id string, in VendorInput) (*model.Vendor, error) {
	in = in.trimmed()
	if in.CompanyName == "" {
		return nil, fmt.Errorf("%w: companyName is required", ErrValidation)
	}

	var updated model.Vendor
	err := s.store.Update(func(doc *model.Document) error {
		vendor := findVendor(doc, id)
		if vendor == nil {
			return fmt.Errorf("%w: vendor %s", ErrNotFound, id)
		}

		vendor.CompanyName = in.CompanyName
		if in.ContactName != "" {
			vendor.ContactName = in.ContactName
		}
		if in.Phone != "" {
			vendor.Phone = in.Phone
		}
		if in.Email != "" {
			vendor.Email = in.Email
		}
		if in.Address != "" {
			vendor.Address = in.Address
		}
		updated = *vendor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVendor removes a vendor that no contract references.
func (s *Service) DeleteVendor(id string) error {
	return s.store.Update(func(doc *model.Document) error {
		if findVendor(doc, id) == nil {
			return fmt.Errorf("%w: vendor %s", ErrNotFound, id)
		}
		for i := range doc.Contracts {
			if doc.Contracts[i].VendorID == id {
				return fmt.Errorf("%w: vendor %s is referenced by contract %s", ErrConflict, id, doc.Contracts[i].ID)
			}
		}

		kept := doc.Vendors[:0]
		for _, v := range doc.Vendors {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		doc.Vendors = kept
		return nil
	})
}
