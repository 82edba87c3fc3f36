package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModificationStatus represents the review/execution status of a modification request.
type ModificationStatus string

const (
	ModificationPending    ModificationStatus = "pending"
	ModificationApproved   ModificationStatus = "approved"
	ModificationRejected   ModificationStatus = "rejected"
	ModificationInProgress ModificationStatus = "in-progress"
	ModificationCompleted  ModificationStatus = "completed"
)

var modificationTransitions = map[ModificationStatus]map[ModificationStatus]bool{
	ModificationPending:    {ModificationApproved: true, ModificationRejected: true},
	ModificationApproved:   {ModificationInProgress: true},
	ModificationInProgress: {ModificationCompleted: true},
	ModificationRejected:   {},
	ModificationCompleted:  {},
}

// CanTransition reports whether a modification request may move between statuses.
func (s ModificationStatus) CanTransition(to ModificationStatus) bool {
	m, ok := modificationTransitions[s]
	if !ok {
		return false
	}
	return m[to]
}

// RequestType distinguishes additions to an appointment from changes to its scope.
type RequestType string

const (
	RequestAddition RequestType = "addition"
	RequestChange   RequestType = "change"
)

// Priority enum for modification requests.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), true
	default:
		return "", false
	}
}

// TimelineEvent is a named milestone on a modification project, shown to the
// customer as a checkpoint list.
type TimelineEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Completed   bool      `json:"completed"`
}

// ModificationRequest is a customer-initiated change order against an existing
// appointment, subject to admin approval. The admin review fields and the
// customer-facing timeline live on the same entity.
type ModificationRequest struct {
	BaseModel
	CustomerID      string             `json:"customerId"`
	CustomerName    string             `json:"customerName"`
	AppointmentID   string             `json:"appointmentId"`
	ServiceType     string             `json:"serviceType"`
	AppointmentDate string             `json:"appointmentDate"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	RequestType     RequestType        `json:"requestType"`
	Priority        Priority           `json:"priority"`
	Status          ModificationStatus `json:"status"`
	EstimatedCost   *decimal.Decimal   `json:"estimatedCost,omitempty"`
	AdminResponse   string             `json:"adminResponse,omitempty"`
	RespondedBy     string             `json:"respondedBy,omitempty"`
	RespondedAt     *time.Time         `json:"respondedAt,omitempty"`
	AssignedTo      string             `json:"assignedTo,omitempty"`
	Timeline        []TimelineEvent    `json:"timeline"`
	// ManualProgress is only consulted while the timeline is empty.
	ManualProgress int `json:"-"`
}

// Progress derives the customer-facing completion percentage. With checkpoints
// present it is the completed share of the timeline; otherwise the manually set
// value, clamped to [0,100].
func (r *ModificationRequest) Progress() int {
	if len(r.Timeline) == 0 {
		return ClampProgress(r.ManualProgress)
	}
	done := 0
	for _, ev := range r.Timeline {
		if ev.Completed {
			done++
		}
	}
	return done * 100 / len(r.Timeline)
}

// ClampProgress bounds a percentage to [0,100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
