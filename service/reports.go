package service

import (
	"fmt"

	"github.com/potorik/construction-expense-tracker/model"
)

// Report payloads keep labels, data, and colors positionally aligned so
// the chart consumer can feed them straight through.

type VendorSpendRow struct {
	Vendor      string  `json:"vendor"`
	AmountSpent float64 `json:"amountSpent"`
}

type SpendSummary struct {
	TotalContracted float64 `json:"totalContracted"`
	TotalSpent      float64 `json:"totalSpent"`
}

type VendorSpendReport struct {
	Labels  []string         `json:"labels"`
	Data    []float64        `json:"data"`
	CSVData []VendorSpendRow `json:"csvData"`
	Summary SpendSummary     `json:"summary"`
}

type TagSpendRow struct {
	Tag         string  `json:"tag"`
	AmountSpent float64 `json:"amountSpent"`
}

type TagSpendReport struct {
	Labels  []string      `json:"labels"`
	Data    []float64     `json:"data"`
	Colors  []string      `json:"colors"`
	CSVData []TagSpendRow `json:"csvData"`
}

// UntaggedLabel is the bucket for spend on contracts carrying no tags.
const UntaggedLabel = "Untagged"

// UntaggedColor matches the muted default used for uncategorized slices.
const UntaggedColor = "#9e9e9e"

// SpendByVendor accumulates payments per vendor, in the order vendors are
// first seen while walking contracts. Vendors with zero spend are omitted
// from the breakdown but still count toward the contracted total.
func (s *Service) SpendByVendor() (*VendorSpendReport, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	report := &VendorSpendReport{
		Labels:  []string{},
		Data:    []float64{},
		CSVData: []VendorSpendRow{},
	}

	spend := make(map[string]float64)
	var order []string
	for i := range doc.Contracts {
		contract := &doc.Contracts[i]
		paid, _ := computeContractTotals(contract)

		report.Summary.TotalContracted += float64(contract.ContractAmount)
		report.Summary.TotalSpent += paid

		if paid <= 0 {
			continue
		}
		if _, seen := spend[contract.VendorID]; !seen {
			order = append(order, contract.VendorID)
		}
		spend[contract.VendorID] += paid
	}

	for _, vendorID := range order {
		label := vendorLabel(doc, vendorID)
		report.Labels = append(report.Labels, label)
		report.Data = append(report.Data, spend[vendorID])
		report.CSVData = append(report.CSVData, VendorSpendRow{
			Vendor:      label,
			AmountSpent: spend[vendorID],
		})
	}
	return report, nil
}

// SpendByTag attributes each contract's full paid amount to every one of
// its tags, or to the Untagged bucket when it has none. Amounts are not
// split across tags: a contract tagged N ways contributes its full spend
// to all N buckets, so the buckets overlap and their sum can exceed the
// total spent.
func (s *Service) SpendByTag() (*TagSpendReport, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	report := &TagSpendReport{
		Labels:  []string{},
		Data:    []float64{},
		Colors:  []string{},
		CSVData: []TagSpendRow{},
	}

	type bucket struct {
		amount float64
		color  string
	}
	buckets := make(map[string]*bucket)
	var order []string

	add := func(label, color string, amount float64) {
		b, ok := buckets[label]
		if !ok {
			b = &bucket{color: color}
			buckets[label] = b
			order = append(order, label)
		}
		b.amount += amount
	}

	for i := range doc.Contracts {
		contract := &doc.Contracts[i]
		paid, _ := computeContractTotals(contract)
		if paid <= 0 {
			continue
		}

		resolved := 0
		for _, tagID := range contract.TagIDs {
			if tag := findTag(doc, tagID); tag != nil {
				color := tag.Color
				if color == "" {
					color = DefaultTagColor
				}
				add(tag.Name, color, paid)
				resolved++
			}
		}
		if resolved == 0 {
			add(UntaggedLabel, UntaggedColor, paid)
		}
	}

	for _, label := range order {
		b := buckets[label]
		report.Labels = append(report.Labels, label)
		report.Data = append(report.Data, b.amount)
		report.Colors = append(report.Colors, b.color)
		report.CSVData = append(report.CSVData, TagSpendRow{
			Tag:         label,
			AmountSpent: b.amount,
		})
	}
	return report, nil
}

func vendorLabel(doc *model.Document, vendorID string) string {
	if v := findVendor(doc, vendorID); v != nil {
		return v.CompanyName
	}
	short := vendorID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Unknown (%s...)", short)
}
