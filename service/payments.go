package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/potorik/construction-expense-tracker/model"
)

type PaymentInput struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Notes  string  `json:"notes"`
}

func (in *PaymentInput) validate() error {
	if strings.TrimSpace(in.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}

// AddPayment appends a payment to a contract. Totals are derived on the
// next read, never cached on the record.
func (s *Service) AddPayment(contractID string, in PaymentInput) (*model.Payment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	payment := model.Payment{
		ID:     uuid.New().String(),
		Date:   in.Date,
		Amount: model.Amount(in.Amount),
		Method: in.Method,
		Notes:  in.Notes,
	}

	err := s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, contractID)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
		}
		contract.Payments = append(contract.Payments, payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdatePayment rewrites one payment on a contract.
func (s *Service) UpdatePayment(contractID, paymentID string, in PaymentInput) (*model.Payment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated model.Payment
	err := s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, contractID)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
		}
		for i := range contract.Payments {
			if contract.Payments[i].ID == paymentID {
				contract.Payments[i].Date = in.Date
				contract.Payments[i].Amount = model.Amount(in.Amount)
				contract.Payments[i].Method = in.Method
				contract.Payments[i].Notes = in.Notes
				updated = contract.Payments[i]
				return nil
			}
		}
		return fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePayment removes one payment from a contract.
func (s *Service) DeletePayment(contractID, paymentID string) error {
	return s.store.Update(func(doc *model.Document) error {
		contract := findContract(doc, contractID)
		if contract == nil {
			return fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
		}
		for i := range contract.Payments {
			if contract.Payments[i].ID == paymentID {
				contract.Payments = append(contract.Payments[:i], contract.Payments[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
	})
}
