package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

var testCard = CardDetails{
	CardNumber: "4111111111119876",
	CardHolder: "John Doe",
	Expiry:     "12/27",
	CVV:        "123",
}

func TestPayPendingInvoice(t *testing.T) {
	s, _ := testClock(t)

	p, err := s.Payments.Pay("pay-002", testCard)
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if p.Status != models.PaymentCompleted {
		t.Fatalf("expected completed, got %s", p.Status)
	}
	if !strings.HasPrefix(p.TransactionID, "txn_") {
		t.Fatalf("expected transaction reference, got %q", p.TransactionID)
	}
	if p.PaymentDate == nil {
		t.Fatalf("payment date not recorded")
	}
	if p.DueDate != nil {
		t.Fatalf("settled invoice must carry no due date")
	}
	if p.PaymentMethod != "Credit Card ****9876" {
		t.Fatalf("unexpected masked method %q", p.PaymentMethod)
	}
}

func TestPayIsNotRepeatable(t *testing.T) {
	s, _ := testClock(t)

	if _, err := s.Payments.Pay("pay-002", testCard); err != nil {
		t.Fatalf("first pay: %v", err)
	}
	_, err := s.Payments.Pay("pay-002", testCard)
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error on double pay, got %v", err)
	}

	// Already-completed fixture behaves the same way.
	_, err = s.Payments.Pay("pay-001", testCard)
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestPayRejectsShortCardNumber(t *testing.T) {
	s, _ := testClock(t)

	card := testCard
	card.CardNumber = "4111"
	_, err := s.Payments.Pay("pay-002", card)
	var ve models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPaymentStats(t *testing.T) {
	s, _ := testClock(t)

	stats := s.Payments.Stats()
	if stats.Completed != 3 || stats.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("420.00")) {
		t.Fatalf("unexpected revenue %s", stats.TotalRevenue)
	}
	if !stats.PendingAmount.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("unexpected pending amount %s", stats.PendingAmount)
	}
}

func TestListFilteredSearch(t *testing.T) {
	s, _ := testClock(t)

	got := s.Payments.ListFiltered(PaymentFilter{Query: "jane"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for jane, got %d", len(got))
	}

	got = s.Payments.ListFiltered(PaymentFilter{Status: "pending"})
	if len(got) != 1 || got[0].ID != "pay-002" {
		t.Fatalf("unexpected pending filter result: %+v", got)
	}

	got = s.Payments.ListFiltered(PaymentFilter{Query: "INV-2025-003"})
	if len(got) != 1 || got[0].ID != "pay-003" {
		t.Fatalf("unexpected invoice search result: %+v", got)
	}
}
