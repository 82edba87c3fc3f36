package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle status of an invoice.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentPending:   {PaymentCompleted: true, PaymentFailed: true},
	PaymentCompleted: {PaymentRefunded: true},
	PaymentFailed:    {},
	PaymentRefunded:  {},
}

// CanTransition reports whether a payment may move between statuses.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	m, ok := paymentTransitions[s]
	if !ok {
		return false
	}
	return m[to]
}

// Payment is a billable unit tied to one appointment, with its own status
// lifecycle independent of the appointment's.
//
// Invariants: status=completed implies TransactionID and PaymentDate are set;
// status=pending implies DueDate is set.
type Payment struct {
	BaseModel
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	AppointmentID string          `json:"appointmentId"`
	ServiceType   string          `json:"serviceType"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
}
