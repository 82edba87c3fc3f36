package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

// ReviewDecision is the admin's verdict on a pending modification request.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

// ModificationCounts are the derived stats shown above the admin request list.
type ModificationCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// ModificationStore holds change orders and drives the review workflow.
type ModificationStore struct {
	mu    sync.RWMutex
	items map[string]*models.ModificationRequest
	now   func() time.Time
}

func newModificationStore(now func() time.Time) *ModificationStore {
	return &ModificationStore{items: make(map[string]*models.ModificationRequest), now: now}
}

// cloneRequest copies a request including its timeline so callers never share
// the locked backing array.
func cloneRequest(r *models.ModificationRequest) models.ModificationRequest {
	out := *r
	out.Timeline = make([]models.TimelineEvent, len(r.Timeline))
	copy(out.Timeline, r.Timeline)
	return out
}

// SubmitParams carries a customer's new modification request.
type SubmitParams struct {
	CustomerID      string
	CustomerName    string
	AppointmentID   string
	ServiceType     string
	AppointmentDate string
	Title           string
	Description     string
	RequestType     models.RequestType
	Priority        models.Priority
}

// Submit creates a request in "pending" with no cost estimate, no admin
// response and an empty timeline.
func (s *ModificationStore) Submit(p SubmitParams) (models.ModificationRequest, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.ModificationRequest{}, models.ValidationError{Code: "TITLE_REQUIRED", Message: "please provide a request title"}
	}
	if strings.TrimSpace(p.Description) == "" {
		return models.ModificationRequest{}, models.ValidationError{Code: "DESCRIPTION_REQUIRED", Message: "please describe the requested modification"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := &models.ModificationRequest{
		BaseModel:       models.NewBase(s.now()),
		CustomerID:      p.CustomerID,
		CustomerName:    p.CustomerName,
		AppointmentID:   p.AppointmentID,
		ServiceType:     p.ServiceType,
		AppointmentDate: p.AppointmentDate,
		Title:           p.Title,
		Description:     p.Description,
		RequestType:     p.RequestType,
		Priority:        p.Priority,
		Status:          models.ModificationPending,
		Timeline:        []models.TimelineEvent{},
	}
	s.items[r.ID] = r
	return cloneRequest(r), nil
}

// Review settles a pending request. Rejection requires a non-blank response
// text; the cost estimate is kept on approval only. A request that has already
// left "pending" cannot be reviewed again.
func (s *ModificationStore) Review(id string, decision ReviewDecision, responseText string, estimatedCost *decimal.Decimal, reviewer string) (models.ModificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return models.ModificationRequest{}, models.NotFoundError{Entity: "modification request", ID: id}
	}

	var target models.ModificationStatus
	switch decision {
	case DecisionApprove:
		target = models.ModificationApproved
	case DecisionReject:
		target = models.ModificationRejected
	default:
		return models.ModificationRequest{}, models.ValidationError{Code: "DECISION_INVALID", Message: "decision must be approve or reject"}
	}
	if decision == DecisionReject && strings.TrimSpace(responseText) == "" {
		return models.ModificationRequest{}, models.ValidationError{Code: "RESPONSE_REQUIRED", Message: "please provide a reason for rejection"}
	}
	if !r.Status.CanTransition(target) {
		return models.ModificationRequest{}, models.InvalidStateError{Entity: "modification request", From: string(r.Status), Op: "review"}
	}
	if estimatedCost != nil && estimatedCost.IsNegative() {
		return models.ModificationRequest{}, models.ValidationError{Code: "COST_INVALID", Message: "estimated cost must not be negative"}
	}

	now := s.now()
	r.Status = target
	r.AdminResponse = responseText
	r.RespondedBy = reviewer
	r.RespondedAt = &now
	if decision == DecisionApprove {
		r.EstimatedCost = estimatedCost
	}
	r.Touch(now)
	return cloneRequest(r), nil
}

// Start moves an approved request into execution and assigns an employee.
func (s *ModificationStore) Start(id, assignee string) (models.ModificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return models.ModificationRequest{}, models.NotFoundError{Entity: "modification request", ID: id}
	}
	if !r.Status.CanTransition(models.ModificationInProgress) {
		return models.ModificationRequest{}, models.InvalidStateError{Entity: "modification request", From: string(r.Status), Op: "start"}
	}
	r.Status = models.ModificationInProgress
	r.AssignedTo = assignee
	r.Touch(s.now())
	return cloneRequest(r), nil
}

// AddCheckpoint appends a milestone to a reviewed request's timeline.
func (s *ModificationStore) AddCheckpoint(id, title, description string, date time.Time) (models.ModificationRequest, error) {
	if strings.TrimSpace(title) == "" {
		return models.ModificationRequest{}, models.ValidationError{Code: "TITLE_REQUIRED", Message: "please provide a checkpoint title"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return models.ModificationRequest{}, models.NotFoundError{Entity: "modification request", ID: id}
	}
	switch r.Status {
	case models.ModificationApproved, models.ModificationInProgress:
	default:
		return models.ModificationRequest{}, models.InvalidStateError{Entity: "modification request", From: string(r.Status), Op: "add checkpoint"}
	}
	r.Timeline = append(r.Timeline, models.TimelineEvent{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Date:        date,
	})
	r.Touch(s.now())
	return cloneRequest(r), nil
}

// CompleteCheckpoint marks a milestone done on an approved or in-progress
// request. Completing the last open checkpoint of an in-progress request
// completes the request itself.
func (s *ModificationStore) CompleteCheckpoint(id, checkpointID string) (models.ModificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return models.ModificationRequest{}, models.NotFoundError{Entity: "modification request", ID: id}
	}
	switch r.Status {
	case models.ModificationApproved, models.ModificationInProgress:
	default:
		return models.ModificationRequest{}, models.InvalidStateError{Entity: "modification request", From: string(r.Status), Op: "complete checkpoint"}
	}

	found := false
	allDone := true
	for i := range r.Timeline {
		if r.Timeline[i].ID == checkpointID {
			r.Timeline[i].Completed = true
			found = true
		}
		if !r.Timeline[i].Completed {
			allDone = false
		}
	}
	if !found {
		return models.ModificationRequest{}, models.NotFoundError{Entity: "checkpoint", ID: checkpointID}
	}
	if allDone && r.Status == models.ModificationInProgress {
		r.Status = models.ModificationCompleted
	}
	r.Touch(s.now())
	return cloneRequest(r), nil
}

// Get returns a request by ID.
func (s *ModificationStore) Get(id string) (models.ModificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return models.ModificationRequest{}, models.NotFoundError{Entity: "modification request", ID: id}
	}
	return cloneRequest(r), nil
}

// ListFiltered returns requests matching the status filter ("all" or empty for
// everything), ordered newest-createdAt first. Display ordering only.
func (s *ModificationStore) ListFiltered(status string) []models.ModificationRequest {
	return s.list(func(r *models.ModificationRequest) bool {
		return status == "" || status == "all" || string(r.Status) == status
	})
}

// ListByCustomer returns one customer's requests, newest first.
func (s *ModificationStore) ListByCustomer(customerID string) []models.ModificationRequest {
	return s.list(func(r *models.ModificationRequest) bool { return r.CustomerID == customerID })
}

// Counts recomputes the derived pending/approved/rejected/total stats.
func (s *ModificationStore) Counts() ModificationCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c ModificationCounts
	for _, r := range s.items {
		switch r.Status {
		case models.ModificationPending:
			c.Pending++
		case models.ModificationApproved:
			c.Approved++
		case models.ModificationRejected:
			c.Rejected++
		}
		c.Total++
	}
	return c
}

func (s *ModificationStore) list(keep func(*models.ModificationRequest) bool) []models.ModificationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ModificationRequest
	for _, r := range s.items {
		if keep(r) {
			out = append(out, cloneRequest(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// insert is used by the seeder.
func (s *ModificationStore) insert(r *models.ModificationRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[r.ID] = r
}
