package service

import (
	"errors"
	"testing"
)

func setupContract(t *testing.T, svc *Service) string {
	t.Helper()
	result, err := svc.CreateContract(ContractInput{
		Description:    "Roof",
		ContractAmount: 1000,
		Vendor:         VendorRef{New: &VendorInput{CompanyName: "Acme"}},
	})
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}
	return result.Contract.ID
}

func TestAddPayment(t *testing.T) {
	svc, _ := newTestService(t)
	contractID := setupContract(t, svc)

	payment, err := svc.AddPayment(contractID, PaymentInput{
		Date:   "2024-01-01",
		Amount: 400,
		Method: "check",
	})
	if err != nil {
		t.Fatalf("AddPayment: %v", err)
	}
	if payment.ID == "" {
		t.Error("Expected generated id")
	}

	view, _ := svc.GetContract(contractID)
	if view.PaidTotal != 400 {
		t.Errorf("Expected paidTotal 400, got %v", view.PaidTotal)
	}
}

func TestAddPaymentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	contractID := setupContract(t, svc)

	if _, err := svc.AddPayment(contractID, PaymentInput{Amount: 400}); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error for missing date, got %v", err)
	}
	if _, err := svc.AddPayment(contractID, PaymentInput{Date: "2024-01-01", Amount: 0}); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error for zero amount, got %v", err)
	}
	if _, err := svc.AddPayment(contractID, PaymentInput{Date: "2024-01-01", Amount: -5}); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error for negative amount, got %v", err)
	}
}

func TestAddPaymentContractNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.AddPayment("missing", PaymentInput{Date: "2024-01-01", Amount: 400}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected not found, got %v", err)
	}
}

func TestUpdatePayment(t *testing.T) {
	svc, _ := newTestService(t)
	contractID := setupContract(t, svc)

	payment, err := svc.AddPayment(contractID, PaymentInput{Date: "2024-01-01", Amount: 400})
	if err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	updated, err := svc.UpdatePayment(contractID, payment.ID, PaymentInput{
		Date:   "2024-02-01",
		Amount: 450,
		Notes:  "adjusted",
	})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if updated.Date != "2024-02-01" || float64(updated.Amount) != 450 || updated.Notes != "adjusted" {
		t.Error("Expected updated payment fields")
	}

	view, _ := svc.GetContract(contractID)
	if view.PaidTotal != 450 {
		t.Errorf("Expected fresh total 450, got %v", view.PaidTotal)
	}

	if _, err := svc.UpdatePayment(contractID, "missing", PaymentInput{Date: "2024-02-01", Amount: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected not found, got %v", err)
	}
}

func TestDeletePayment(t *testing.T) {
	svc, _ := newTestService(t)
	contractID := setupContract(t, svc)

	payment, err := svc.AddPayment(contractID, PaymentInput{Date: "2024-01-01", Amount: 400})
	if err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	if err := svc.DeletePayment(contractID, payment.ID); err != nil {
		t.Fatalf("DeletePayment: %v", err)
	}

	view, _ := svc.GetContract(contractID)
	if view.PaidTotal != 0 || view.BalanceOwed != 1000 {
		t.Errorf("Expected totals recomputed, got %v/%v", view.PaidTotal, view.BalanceOwed)
	}

	if err := svc.DeletePayment(contractID, payment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected not found on second delete, got %v", err)
	}
}
