package model

// Document is the whole persisted state: every vendor, tag, and contract
// lives in this single object, rewritten wholesale on each save.
type Document struct {
	LastUpdated string     `json:"last_updated"`
	Vendors     []Vendor   `json:"vendors"`
	Contracts   []Contract `json:"contracts"`
	Tags        []Tag      `json:"tags"`
}

// Vendor is an independent root entity. Deletable only while no contract
// references it.
type Vendor struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Tag names are unique case-insensitively. Deleting a tag strips its id
// from every contract.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Contract owns its payments and file records exclusively.
type Contract struct {
	ID                  string       `json:"id"`
	VendorID            string       `json:"vendorId"`
	Description         string       `json:"description"`
	ContractAmount      Amount       `json:"contractAmount"`
	EstimatedCompletion string       `json:"estimatedCompletion,omitempty"`
	TagIDs              []string     `json:"tagIds"`
	Payments            []Payment    `json:"payments"`
	Files               []FileRecord `json:"files"`
}

type Payment struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Amount Amount `json:"amount"`
	Method string `json:"method,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// FileRecord is upload metadata only; the binary lives in object storage
// under Filename.
type FileRecord struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"originalFilename"`
}

// ViewContract is the read projection of a contract: the stored fields plus
// totals and resolved references. Never persisted.
type ViewContract struct {
	Contract
	PaidTotal   float64 `json:"paidTotal"`
	BalanceOwed float64 `json:"balanceOwed"`
	VendorName  string  `json:"vendorName"`
	Tags        []Tag   `json:"tags"`
}
