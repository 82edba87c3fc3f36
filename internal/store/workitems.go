package store

import (
	"sort"
	"sync"
	"time"

	"servicehub-server/internal/models"
)

// WorkItemStore tracks employee labor against appointments and modification
// projects. It enforces the single-active-timer invariant: starting a timer
// stops any other timer the same employee has running.
type WorkItemStore struct {
	mu    sync.Mutex
	items map[string]*models.WorkItem
	now   func() time.Time
}

func newWorkItemStore(now func() time.Time) *WorkItemStore {
	return &WorkItemStore{items: make(map[string]*models.WorkItem), now: now}
}

// StartTimer begins timing an item. Any other running timer owned by the same
// employee is paused first, folding its elapsed time into that item's logged
// hours. A pending item starting its timer moves to in-progress.
func (s *WorkItemStore) StartTimer(id string) (models.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.items[id]
	if !ok {
		return models.WorkItem{}, models.NotFoundError{Entity: "work item", ID: id}
	}
	if w.Status == models.WorkCompleted {
		return models.WorkItem{}, models.InvalidStateError{Entity: "work item", From: string(w.Status), Op: "start timer"}
	}
	if w.IsTimerRunning {
		return cloneWorkItem(w), nil
	}

	now := s.now()
	for _, other := range s.items {
		if other.ID != id && other.AssignedEmployee == w.AssignedEmployee && other.IsTimerRunning {
			s.stopTimerLocked(other, now)
		}
	}

	w.IsTimerRunning = true
	w.TimerStartTime = &now
	if w.Status == models.WorkPending {
		w.Status = models.WorkInProgress
	}
	w.Touch(now)
	return cloneWorkItem(w), nil
}

// PauseTimer stops a running timer, adds the elapsed interval to logged hours
// and recomputes derived progress.
func (s *WorkItemStore) PauseTimer(id string) (models.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.items[id]
	if !ok {
		return models.WorkItem{}, models.NotFoundError{Entity: "work item", ID: id}
	}
	if !w.IsTimerRunning {
		return models.WorkItem{}, models.InvalidStateError{Entity: "work item", From: "stopped", Op: "pause timer"}
	}
	s.stopTimerLocked(w, s.now())
	return cloneWorkItem(w), nil
}

// LogTime adds a manual time entry. Hours must be strictly positive.
func (s *WorkItemStore) LogTime(id string, hours float64) (models.WorkItem, error) {
	if hours <= 0 {
		return models.WorkItem{}, models.ValidationError{Code: "HOURS_INVALID", Message: "logged hours must be greater than zero"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.items[id]
	if !ok {
		return models.WorkItem{}, models.NotFoundError{Entity: "work item", ID: id}
	}
	if w.Status == models.WorkCompleted {
		return models.WorkItem{}, models.InvalidStateError{Entity: "work item", From: string(w.Status), Op: "log time"}
	}
	w.LoggedHours += hours
	if !w.ManualProgress {
		w.Progress = w.DerivedProgress()
	}
	w.Touch(s.now())
	return cloneWorkItem(w), nil
}

// UpdateStatus applies a guarded status transition with a manual progress
// override (clamped to [0,100]; the override wins over derivation from hours)
// and records the note as an audit entry.
func (s *WorkItemStore) UpdateStatus(id string, status models.WorkItemStatus, progress int, note, author string) (models.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.items[id]
	if !ok {
		return models.WorkItem{}, models.NotFoundError{Entity: "work item", ID: id}
	}
	if !w.Status.CanTransition(status) {
		return models.WorkItem{}, models.InvalidStateError{Entity: "work item", From: string(w.Status), Op: "update status"}
	}

	now := s.now()
	if w.IsTimerRunning && status == models.WorkCompleted {
		s.stopTimerLocked(w, now)
	}
	w.Status = status
	w.Progress = models.ClampProgress(progress)
	w.ManualProgress = true
	if status == models.WorkCompleted {
		w.Progress = 100
	}
	if note != "" {
		w.Notes = append(w.Notes, models.WorkNote{Text: note, Author: author, Timestamp: now})
	}
	w.Touch(now)
	return cloneWorkItem(w), nil
}

// Get returns a work item by ID.
func (s *WorkItemStore) Get(id string) (models.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.items[id]
	if !ok {
		return models.WorkItem{}, models.NotFoundError{Entity: "work item", ID: id}
	}
	return cloneWorkItem(w), nil
}

// ListByEmployee returns an employee's work items, oldest first (board order).
func (s *WorkItemStore) ListByEmployee(employeeName string) []models.WorkItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.WorkItem
	for _, w := range s.items {
		if w.AssignedEmployee == employeeName {
			out = append(out, cloneWorkItem(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// caller must hold the lock
func (s *WorkItemStore) stopTimerLocked(w *models.WorkItem, now time.Time) {
	if !w.IsTimerRunning || w.TimerStartTime == nil {
		return
	}
	elapsed := now.Sub(*w.TimerStartTime).Hours()
	if elapsed > 0 {
		w.LoggedHours += elapsed
	}
	w.IsTimerRunning = false
	w.TimerStartTime = nil
	if !w.ManualProgress {
		w.Progress = w.DerivedProgress()
	}
	w.Touch(now)
}

func cloneWorkItem(w *models.WorkItem) models.WorkItem {
	out := *w
	out.Notes = append([]models.WorkNote(nil), w.Notes...)
	if w.TimerStartTime != nil {
		t := *w.TimerStartTime
		out.TimerStartTime = &t
	}
	return out
}

// insert is used by the seeder.
func (s *WorkItemStore) insert(w *models.WorkItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[w.ID] = w
}
