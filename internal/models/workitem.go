package models

import (
	"math"
	"time"
)

// WorkItemStatus represents the tracking status of a unit of employee work.
type WorkItemStatus string

const (
	WorkPending    WorkItemStatus = "pending"
	WorkInProgress WorkItemStatus = "in-progress"
	WorkCompleted  WorkItemStatus = "completed"
)

var workItemTransitions = map[WorkItemStatus]map[WorkItemStatus]bool{
	WorkPending:    {WorkInProgress: true},
	WorkInProgress: {WorkCompleted: true, WorkPending: true},
	WorkCompleted:  {},
}

// CanTransition reports whether a work item may move between statuses.
// Completed is terminal, including for self-transitions.
func (s WorkItemStatus) CanTransition(to WorkItemStatus) bool {
	if s == WorkCompleted {
		return false
	}
	if s == to {
		return true
	}
	m, ok := workItemTransitions[s]
	if !ok {
		return false
	}
	return m[to]
}

// WorkItemType distinguishes appointment visits from modification projects.
type WorkItemType string

const (
	WorkTypeAppointment WorkItemType = "appointment"
	WorkTypeProject     WorkItemType = "project"
)

// WorkNote is an audit entry recorded alongside a manual status update.
type WorkNote struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkItem is a unit of employee-trackable labor against which time is logged.
//
// Invariants: LoggedHours never decreases; TimerStartTime is present iff
// IsTimerRunning; at most one item per employee has a running timer.
type WorkItem struct {
	BaseModel
	Type             WorkItemType   `json:"type"`
	Title            string         `json:"title"`
	CustomerName     string         `json:"customerName"`
	AssignedEmployee string         `json:"assignedEmployee"`
	Status           WorkItemStatus `json:"status"`
	Progress         int            `json:"progress"`
	EstimatedHours   float64        `json:"estimatedHours"`
	LoggedHours      float64        `json:"loggedHours"`
	IsTimerRunning   bool           `json:"isTimerRunning"`
	TimerStartTime   *time.Time     `json:"timerStartTime,omitempty"`
	Notes            []WorkNote     `json:"notes,omitempty"`
	// manualProgress marks Progress as operator-set, suspending derivation.
	ManualProgress bool `json:"-"`
}

// DerivedProgress computes min(100, loggedHours/estimatedHours*100).
func (w *WorkItem) DerivedProgress() int {
	if w.EstimatedHours <= 0 {
		return 0
	}
	p := int(math.Round(w.LoggedHours / w.EstimatedHours * 100))
	if p > 100 {
		return 100
	}
	return p
}
