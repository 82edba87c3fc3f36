package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"servicehub-server/internal/models"
)

const dateLayout = "2006-01-02"

// AppointmentStore holds customer bookings and drives their status lifecycle.
type AppointmentStore struct {
	mu    sync.RWMutex
	items map[string]*models.Appointment
	now   func() time.Time
}

func newAppointmentStore(now func() time.Time) *AppointmentStore {
	return &AppointmentStore{items: make(map[string]*models.Appointment), now: now}
}

// Book creates a new appointment in "upcoming" with no employee assigned.
// All fields are required; the date may not lie before the current date
// (same-day booking is allowed).
func (s *AppointmentStore) Book(customerID, serviceType, date, timeSlot, location string) (models.Appointment, error) {
	if err := validateBooking(serviceType, date, timeSlot, location, s.now()); err != nil {
		return models.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := &models.Appointment{
		BaseModel:        models.NewBase(s.now()),
		CustomerID:       customerID,
		ServiceType:      serviceType,
		Date:             date,
		Time:             timeSlot,
		Location:         location,
		Status:           models.AppointmentUpcoming,
		AssignedEmployee: models.UnassignedEmployee,
	}
	s.items[a.ID] = a
	return *a, nil
}

// Reschedule moves an upcoming appointment to a new date/time/location.
// Nothing else is reset.
func (s *AppointmentStore) Reschedule(id, newDate, newTime, newLocation string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok {
		return models.Appointment{}, models.NotFoundError{Entity: "appointment", ID: id}
	}
	if a.Status != models.AppointmentUpcoming {
		return models.Appointment{}, models.InvalidStateError{Entity: "appointment", From: string(a.Status), Op: "reschedule"}
	}
	if err := validateBooking(a.ServiceType, newDate, newTime, newLocation, s.now()); err != nil {
		return models.Appointment{}, err
	}
	a.Date = newDate
	a.Time = newTime
	a.Location = newLocation
	a.Touch(s.now())
	return *a, nil
}

// Cancel moves an upcoming appointment to the terminal "cancelled" status.
func (s *AppointmentStore) Cancel(id string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok {
		return models.Appointment{}, models.NotFoundError{Entity: "appointment", ID: id}
	}
	if !a.Status.CanTransition(models.AppointmentCancelled) {
		return models.Appointment{}, models.InvalidStateError{Entity: "appointment", From: string(a.Status), Op: "cancel"}
	}
	a.Status = models.AppointmentCancelled
	a.Touch(s.now())
	return *a, nil
}

// Start moves an upcoming appointment to "in-progress" and assigns the acting
// employee. Progress begins at zero.
func (s *AppointmentStore) Start(id, employeeName string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok {
		return models.Appointment{}, models.NotFoundError{Entity: "appointment", ID: id}
	}
	if !a.Status.CanTransition(models.AppointmentInProgress) {
		return models.Appointment{}, models.InvalidStateError{Entity: "appointment", From: string(a.Status), Op: "start"}
	}
	a.Status = models.AppointmentInProgress
	a.AssignedEmployee = employeeName
	zero := 0
	a.Progress = &zero
	a.Touch(s.now())
	return *a, nil
}

// AdvanceProgress updates completion of an in-progress appointment. The value
// is clamped to [0,100]; reaching 100 transitions the appointment to
// "completed".
func (s *AppointmentStore) AdvanceProgress(id string, progress int) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok {
		return models.Appointment{}, models.NotFoundError{Entity: "appointment", ID: id}
	}
	if a.Status != models.AppointmentInProgress {
		return models.Appointment{}, models.InvalidStateError{Entity: "appointment", From: string(a.Status), Op: "advance progress"}
	}
	p := models.ClampProgress(progress)
	a.Progress = &p
	if p == 100 {
		a.Status = models.AppointmentCompleted
	}
	a.Touch(s.now())
	return *a, nil
}

// Get returns an appointment by ID.
func (s *AppointmentStore) Get(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.items[id]
	if !ok {
		return models.Appointment{}, models.NotFoundError{Entity: "appointment", ID: id}
	}
	return *a, nil
}

// ListByCustomer returns a customer's appointments, newest first.
func (s *AppointmentStore) ListByCustomer(customerID string) []models.Appointment {
	return s.list(func(a *models.Appointment) bool { return a.CustomerID == customerID })
}

// ListForEmployee returns appointments assigned to the employee plus the
// unassigned pool.
func (s *AppointmentStore) ListForEmployee(employeeName string) []models.Appointment {
	return s.list(func(a *models.Appointment) bool {
		return a.AssignedEmployee == employeeName || a.AssignedEmployee == models.UnassignedEmployee
	})
}

// ListAll returns every appointment, newest first.
func (s *AppointmentStore) ListAll() []models.Appointment {
	return s.list(func(*models.Appointment) bool { return true })
}

func (s *AppointmentStore) list(keep func(*models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, a := range s.items {
		if keep(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// insert is used by the seeder.
func (s *AppointmentStore) insert(a *models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.ID] = a
}

func validateBooking(serviceType, date, timeSlot, location string, now time.Time) error {
	if strings.TrimSpace(serviceType) == "" {
		return models.ValidationError{Code: "SERVICE_TYPE_REQUIRED", Message: "please select a service type"}
	}
	if strings.TrimSpace(timeSlot) == "" {
		return models.ValidationError{Code: "TIME_REQUIRED", Message: "please select a time slot"}
	}
	if strings.TrimSpace(location) == "" {
		return models.ValidationError{Code: "LOCATION_REQUIRED", Message: "please enter a service location"}
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return models.ValidationError{Code: "DATE_INVALID", Message: "please select a valid date"}
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	if d.Before(today) {
		return models.ValidationError{Code: "DATE_IN_PAST", Message: "appointment date must not be in the past"}
	}
	return nil
}
