package store

import (
	"errors"
	"testing"
	"time"

	"servicehub-server/internal/models"
)

func testClock(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	current := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	s, err := NewWithClock(func() time.Time { return current })
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return s, &current
}

func TestBookValidation(t *testing.T) {
	s, _ := testClock(t)

	cases := []struct {
		name                              string
		service, date, timeSlot, location string
	}{
		{"missing service", "", "2025-06-05", "10:00 AM", "123 Main St"},
		{"missing time", "House Cleaning", "2025-06-05", "", "123 Main St"},
		{"missing location", "House Cleaning", "2025-06-05", "10:00 AM", ""},
		{"bad date", "House Cleaning", "June 5th", "10:00 AM", "123 Main St"},
		{"past date", "House Cleaning", "2025-06-01", "10:00 AM", "123 Main St"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Appointments.Book("1", tc.service, tc.date, tc.timeSlot, tc.location)
			var ve models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestBookCreatesUpcomingUnassigned(t *testing.T) {
	s, _ := testClock(t)

	a, err := s.Appointments.Book("1", "House Cleaning", "2025-06-05", "10:00 AM", "123 Main St")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if a.Status != models.AppointmentUpcoming {
		t.Fatalf("expected upcoming, got %s", a.Status)
	}
	if a.AssignedEmployee != models.UnassignedEmployee {
		t.Fatalf("expected unassigned, got %s", a.AssignedEmployee)
	}
	if a.Progress != nil {
		t.Fatalf("expected no progress on a fresh booking")
	}
	if a.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestCancelIsNotRepeatable(t *testing.T) {
	s, _ := testClock(t)

	a, err := s.Appointments.Book("1", "House Cleaning", "2025-06-05", "10:00 AM", "123 Main St")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := s.Appointments.Cancel(a.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}

	_, err = s.Appointments.Cancel(a.ID)
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error on second cancel, got %v", err)
	}

	got, err := s.Appointments.Get(a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.AppointmentCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
}

func TestRescheduleOnlyUpcoming(t *testing.T) {
	s, _ := testClock(t)

	// apt-002 is seeded in-progress.
	_, err := s.Appointments.Reschedule("apt-002", "2025-06-10", "3:00 PM", "")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error, got %v", err)
	}

	got, err := s.Appointments.Reschedule("apt-001", "2025-06-10", "3:00 PM", "789 Pine Rd")
	if err != nil {
		t.Fatalf("reschedule upcoming: %v", err)
	}
	if got.Date != "2025-06-10" || got.Time != "3:00 PM" || got.Location != "789 Pine Rd" {
		t.Fatalf("reschedule not applied: %+v", got)
	}
	if got.Status != models.AppointmentUpcoming {
		t.Fatalf("reschedule must not change status, got %s", got.Status)
	}
}

func TestStartAssignsEmployee(t *testing.T) {
	s, _ := testClock(t)

	a, err := s.Appointments.Start("apt-001", "Sarah Smith")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.Status != models.AppointmentInProgress {
		t.Fatalf("expected in-progress, got %s", a.Status)
	}
	if a.AssignedEmployee != "Sarah Smith" {
		t.Fatalf("expected assignment, got %s", a.AssignedEmployee)
	}
	if a.Progress == nil || *a.Progress != 0 {
		t.Fatalf("expected progress reset to 0, got %v", a.Progress)
	}
}

func TestProgressClampAndAutoComplete(t *testing.T) {
	s, _ := testClock(t)

	a, err := s.Appointments.AdvanceProgress("apt-002", 80)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if a.Status != models.AppointmentInProgress || *a.Progress != 80 {
		t.Fatalf("unexpected state after advance: %s %v", a.Status, *a.Progress)
	}

	a, err = s.Appointments.AdvanceProgress("apt-002", 150)
	if err != nil {
		t.Fatalf("advance past 100: %v", err)
	}
	if *a.Progress != 100 {
		t.Fatalf("expected clamp to 100, got %d", *a.Progress)
	}
	if a.Status != models.AppointmentCompleted {
		t.Fatalf("expected auto-complete at 100, got %s", a.Status)
	}

	_, err = s.Appointments.AdvanceProgress("apt-002", 50)
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error on completed appointment, got %v", err)
	}
}

func TestListForEmployeeIncludesUnassignedPool(t *testing.T) {
	s, _ := testClock(t)

	items := s.Appointments.ListForEmployee("Sarah Smith")
	ids := make(map[string]bool, len(items))
	for _, a := range items {
		ids[a.ID] = true
	}
	if !ids["apt-002"] {
		t.Fatalf("expected own assignment apt-002 in %v", ids)
	}
	if !ids["apt-001"] || !ids["apt-004"] {
		t.Fatalf("expected unassigned pool in %v", ids)
	}
	if ids["apt-003"] {
		t.Fatalf("apt-003 belongs to another employee")
	}
}
