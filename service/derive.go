package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/model"
)

// UnknownVendorName is shown on contracts whose vendor id no longer
// resolves.
const UnknownVendorName = "Unknown Vendor"

// VendorInput carries the writable vendor fields for create, update, and
// inline creation during contract create.
type VendorInput struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (in VendorInput) trimmed() VendorInput {
	return VendorInput{
		CompanyName: strings.TrimSpace(in.CompanyName),
		ContactName: strings.TrimSpace(in.ContactName),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Address:     strings.TrimSpace(in.Address),
	}
}

// VendorRef names the vendor a contract belongs to: either the id of an
// existing vendor or the fields for one to create inline. Exactly one of
// the two must be set.
type VendorRef struct {
	ID  string
	New *VendorInput
}

// resolveVendorRef validates the reference against doc and returns the
// vendor id to link. When the inline form is used, the new vendor is
// appended to doc.Vendors and also returned so callers can surface it.
func resolveVendorRef(doc *model.Document, ref VendorRef) (string, *model.Vendor, error) {
	if ref.ID != "" {
		if findVendor(doc, ref.ID) == nil {
			return "", nil, fmt.Errorf("%w: vendor %s", ErrNotFound, ref.ID)
		}
		return ref.ID, nil, nil
	}

	if ref.New == nil {
		return "", nil, fmt.Errorf("%w: vendorId or newVendor is required", ErrValidation)
	}
	in := ref.New.trimmed()
	if in.CompanyName == "" {
		return "", nil, fmt.Errorf("%w: newVendor.companyName is required", ErrValidation)
	}

	vendor := model.Vendor{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	}
	doc.Vendors = append(doc.Vendors, vendor)
	return vendor.ID, &vendor, nil
}

// filterValidTagIDs keeps only ids present in doc.Tags, in first-seen
// order. Unknown ids are dropped without error.
func filterValidTagIDs(doc *model.Document, candidates []string) []string {
	valid := []string{}
	seen := make(map[string]bool)
	for _, id := range candidates {
		if seen[id] {
			continue
		}
		seen[id] = true
		if findTag(doc, id) != nil {
			valid = append(valid, id)
		}
	}
	return valid
}

// computeContractTotals sums the contract's payments and derives the
// outstanding balance. Amounts already decode unparseable values as 0.
func computeContractTotals(contract *model.Contract) (paidTotal, balanceOwed float64) {
	for _, p := range contract.Payments {
		paidTotal += float64(p.Amount)
	}
	return paidTotal, float64(contract.ContractAmount) - paidTotal
}

// populateContract builds the read projection: stored fields plus totals,
// resolved vendor name, and resolved tag objects. The stored contract is
// not mutated.
func populateContract(doc *model.Document, contract *model.Contract) model.ViewContract {
	paid, balance := computeContractTotals(contract)

	vendorName := UnknownVendorName
	if v := findVendor(doc, contract.VendorID); v != nil {
		vendorName = v.CompanyName
	}

	tags := []model.Tag{}
	for _, id := range contract.TagIDs {
		if t := findTag(doc, id); t != nil {
			tags = append(tags, *t)
		}
	}

	view := model.ViewContract{
		Contract:    *contract,
		PaidTotal:   paid,
		BalanceOwed: balance,
		VendorName:  vendorName,
		Tags:        tags,
	}
	if view.TagIDs == nil {
		view.TagIDs = []string{}
	}
	if view.Payments == nil {
		view.Payments = []model.Payment{}
	}
	if view.Files == nil {
		view.Files = []model.FileRecord{}
	}
	return view
}

func findVendor(doc *model.Document, id string) *model.Vendor {
	for i := range doc.Vendors {
		if doc.Vendors[i].ID == id {
			return &doc.Vendors[i]
		}
	}
	return nil
}

func findTag(doc *model.Document, id string) *model.Tag {
	for i := range doc.Tags {
		if doc.Tags[i].ID == id {
			return &doc.Tags[i]
		}
	}
	return nil
}

func findContract(doc *model.Document, id string) *model.Contract {
	for i := range doc.Contracts {
		if doc.Contracts[i].ID == id {
			return &doc.Contracts[i]
		}
	}
	return nil
}
