package store

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

// CardDetails are the simulated gateway inputs. The number is only used to
// derive the masked payment-method label.
type CardDetails struct {
	CardNumber string `json:"cardNumber" binding:"required,min=12"`
	CardHolder string `json:"cardHolder" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required,min=3"`
}

// PaymentFilter narrows the admin transaction listing and export.
type PaymentFilter struct {
	Status string
	Method string
	Query  string
}

// PaymentStats are the aggregates shown above the admin payment table.
type PaymentStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Completed     int             `json:"completed"`
	Failed        int             `json:"failed"`
}

// PaymentStore holds the invoice ledger.
type PaymentStore struct {
	mu    sync.RWMutex
	items map[string]*models.Payment
	now   func() time.Time
}

func newPaymentStore(now func() time.Time) *PaymentStore {
	return &PaymentStore{items: make(map[string]*models.Payment), now: now}
}

// Pay settles a pending invoice. The mock gateway always succeeds once the
// card details validate; a non-pending invoice cannot be paid.
func (s *PaymentStore) Pay(id string, card CardDetails) (models.Payment, error) {
	digits := strings.ReplaceAll(card.CardNumber, " ", "")
	if len(digits) < 12 {
		return models.Payment{}, models.ValidationError{Code: "CARD_INVALID", Message: "please enter a valid card number"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok {
		return models.Payment{}, models.NotFoundError{Entity: "payment", ID: id}
	}
	if !p.Status.CanTransition(models.PaymentCompleted) {
		return models.Payment{}, models.InvalidStateError{Entity: "payment", From: string(p.Status), Op: "pay"}
	}

	now := s.now()
	p.Status = models.PaymentCompleted
	p.TransactionID = newTransactionID()
	p.PaymentDate = &now
	p.PaymentMethod = "Credit Card ****" + digits[len(digits)-4:]
	p.DueDate = nil
	p.Touch(now)
	return *p, nil
}

// Get returns a payment by ID.
func (s *PaymentStore) Get(id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return models.Payment{}, models.NotFoundError{Entity: "payment", ID: id}
	}
	return *p, nil
}

// ListByCustomer returns one customer's invoices, newest first.
func (s *PaymentStore) ListByCustomer(customerID string) []models.Payment {
	return s.list(func(p *models.Payment) bool { return p.CustomerID == customerID })
}

// ListFiltered returns invoices matching the admin filter, newest first.
func (s *PaymentStore) ListFiltered(f PaymentFilter) []models.Payment {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return s.list(func(p *models.Payment) bool {
		if f.Status != "" && f.Status != "all" && string(p.Status) != f.Status {
			return false
		}
		if f.Method != "" && f.Method != "all" && p.PaymentMethod != f.Method {
			return false
		}
		if q != "" {
			hay := strings.ToLower(p.InvoiceNumber + " " + p.CustomerName + " " + p.ServiceType + " " + p.TransactionID)
			if !strings.Contains(hay, q) {
				return false
			}
		}
		return true
	})
}

// Stats recomputes the ledger aggregates on every read.
func (s *PaymentStore) Stats() PaymentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := PaymentStats{
		TotalRevenue:  decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	for _, p := range s.items {
		switch p.Status {
		case models.PaymentCompleted:
			stats.TotalRevenue = stats.TotalRevenue.Add(p.Amount)
			stats.Completed++
		case models.PaymentPending:
			stats.PendingAmount = stats.PendingAmount.Add(p.Amount)
		case models.PaymentFailed:
			stats.Failed++
		}
	}
	return stats
}

func (s *PaymentStore) list(keep func(*models.Payment) bool) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Payment
	for _, p := range s.items {
		if keep(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// insert is used by the seeder.
func (s *PaymentStore) insert(p *models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[p.ID] = p
}

func newTransactionID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return "txn_" + hex.EncodeToString(b)
}
