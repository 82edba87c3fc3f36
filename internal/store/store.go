package store

import (
	"time"

	"servicehub-server/internal/models"
)

// Store aggregates the in-memory collections backing the dashboards. All data
// is seeded mock fixtures and lives for the process lifetime only; the session
// record is the single piece of state that survives a restart.
type Store struct {
	Users         *UserStore
	Services      *ServiceStore
	Appointments  *AppointmentStore
	Modifications *ModificationStore
	Payments      *PaymentStore
	WorkItems     *WorkItemStore
	Notifications *NotificationStore

	// Static analytics fixtures; ratings and month-by-month history are not
	// derivable from the mock ledger.
	Revenue       []models.MonthlyRevenue
	EmployeeStats []models.EmployeePerformance
}

// New returns a Store seeded with the demo dataset.
func New() (*Store, error) {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an injectable clock, used by tests that need to
// control elapsed-time bookkeeping.
func NewWithClock(now func() time.Time) (*Store, error) {
	s := &Store{
		Users:         newUserStore(now),
		Services:      newServiceStore(now),
		Appointments:  newAppointmentStore(now),
		Modifications: newModificationStore(now),
		Payments:      newPaymentStore(now),
		WorkItems:     newWorkItemStore(now),
		Notifications: newNotificationStore(now),
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}
