package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"servicehub-server/internal/models"
)

func TestSubmitDefaults(t *testing.T) {
	s, _ := testClock(t)

	r, err := s.Modifications.Submit(SubmitParams{
		CustomerID:      "1",
		CustomerName:    "John Doe",
		AppointmentID:   "apt-001",
		ServiceType:     "House Cleaning",
		AppointmentDate: "2025-06-05",
		Title:           "Add window washing",
		Description:     "Please include exterior windows",
		RequestType:     models.RequestAddition,
		Priority:        models.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.Status != models.ModificationPending {
		t.Fatalf("expected pending, got %s", r.Status)
	}
	if r.EstimatedCost != nil {
		t.Fatalf("a fresh request must carry no cost estimate")
	}
	if r.AdminResponse != "" || r.RespondedBy != "" || r.RespondedAt != nil {
		t.Fatalf("a fresh request must carry no review outcome")
	}
	if r.Timeline == nil || len(r.Timeline) != 0 {
		t.Fatalf("expected empty non-nil timeline, got %#v", r.Timeline)
	}
}

func TestSubmitRequiresTitleAndDescription(t *testing.T) {
	s, _ := testClock(t)

	for _, p := range []SubmitParams{
		{CustomerID: "1", Title: "", Description: "something"},
		{CustomerID: "1", Title: "something", Description: "  "},
	} {
		_, err := s.Modifications.Submit(p)
		var ve models.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestRejectRequiresResponse(t *testing.T) {
	s, _ := testClock(t)

	_, err := s.Modifications.Review("mod-001", DecisionReject, "   ", nil, "Admin User")
	var ve models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// The failed review must leave the request untouched.
	r, err := s.Modifications.Get("mod-001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Status != models.ModificationPending || r.RespondedAt != nil {
		t.Fatalf("request mutated by failed review: %+v", r)
	}
}

func TestReviewIsNotRepeatable(t *testing.T) {
	s, _ := testClock(t)

	cost := decimal.RequireFromString("250")
	r, err := s.Modifications.Review("mod-001", DecisionApprove, "Approved, scheduling next week", &cost, "Admin User")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if r.Status != models.ModificationApproved {
		t.Fatalf("expected approved, got %s", r.Status)
	}
	if r.EstimatedCost == nil || !r.EstimatedCost.Equal(cost) {
		t.Fatalf("expected cost kept on approval, got %v", r.EstimatedCost)
	}
	if r.RespondedBy != "Admin User" || r.RespondedAt == nil {
		t.Fatalf("review outcome not recorded: %+v", r)
	}

	_, err = s.Modifications.Review("mod-001", DecisionReject, "changed my mind", nil, "Admin User")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error on second review, got %v", err)
	}
}

func TestRejectDiscardsCost(t *testing.T) {
	s, _ := testClock(t)

	cost := decimal.RequireFromString("99")
	r, err := s.Modifications.Review("mod-002", DecisionReject, "Out of scope for this visit", &cost, "Admin User")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if r.Status != models.ModificationRejected {
		t.Fatalf("expected rejected, got %s", r.Status)
	}
	if r.EstimatedCost != nil {
		t.Fatalf("cost must not be kept on rejection, got %v", r.EstimatedCost)
	}
	if r.AdminResponse != "Out of scope for this visit" {
		t.Fatalf("response not recorded: %q", r.AdminResponse)
	}
}

func TestReviewRejectsNegativeCost(t *testing.T) {
	s, _ := testClock(t)

	cost := decimal.RequireFromString("-10")
	_, err := s.Modifications.Review("mod-001", DecisionApprove, "ok", &cost, "Admin User")
	var ve models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStartRequiresApproval(t *testing.T) {
	s, _ := testClock(t)

	_, err := s.Modifications.Start("mod-001", "Sarah Smith")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error starting a pending request, got %v", err)
	}

	r, err := s.Modifications.Start("mod-003", "Sarah Smith")
	if err != nil {
		t.Fatalf("start approved: %v", err)
	}
	if r.Status != models.ModificationInProgress || r.AssignedTo != "Sarah Smith" {
		t.Fatalf("unexpected state after start: %+v", r)
	}
}

func TestCheckpointLifecycle(t *testing.T) {
	s, _ := testClock(t)

	// mod-004 is seeded in-progress with three of five checkpoints done.
	r, err := s.Modifications.Get("mod-004")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := r.Progress(); got != 60 {
		t.Fatalf("expected derived progress 60, got %d", got)
	}

	r, err = s.Modifications.CompleteCheckpoint("mod-004", "tl-004")
	if err != nil {
		t.Fatalf("complete tl-004: %v", err)
	}
	if r.Status != models.ModificationInProgress {
		t.Fatalf("request must stay in-progress with open checkpoints, got %s", r.Status)
	}
	if got := r.Progress(); got != 80 {
		t.Fatalf("expected derived progress 80, got %d", got)
	}

	r, err = s.Modifications.CompleteCheckpoint("mod-004", "tl-005")
	if err != nil {
		t.Fatalf("complete tl-005: %v", err)
	}
	if r.Status != models.ModificationCompleted {
		t.Fatalf("completing the last checkpoint must complete the request, got %s", r.Status)
	}
	if got := r.Progress(); got != 100 {
		t.Fatalf("expected progress 100, got %d", got)
	}

	// A finished request's timeline is settled.
	_, err = s.Modifications.CompleteCheckpoint("mod-004", "tl-001")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("completed request must refuse checkpoint updates, got %v", err)
	}
}

func TestCompleteCheckpointGuards(t *testing.T) {
	s, _ := testClock(t)

	// mod-001 is pending and has no reviewed timeline to work against.
	_, err := s.Modifications.CompleteCheckpoint("mod-001", "tl-001")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error on pending request, got %v", err)
	}
}

func TestAddCheckpointGuards(t *testing.T) {
	s, _ := testClock(t)

	_, err := s.Modifications.AddCheckpoint("mod-001", "Kickoff", "", time.Now())
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error on pending request, got %v", err)
	}

	r, err := s.Modifications.AddCheckpoint("mod-004", "Punch List", "Final walkthrough items", time.Now())
	if err != nil {
		t.Fatalf("add checkpoint: %v", err)
	}
	if len(r.Timeline) != 6 {
		t.Fatalf("expected 6 timeline events, got %d", len(r.Timeline))
	}
	last := r.Timeline[len(r.Timeline)-1]
	if last.Title != "Punch List" || last.Completed {
		t.Fatalf("unexpected new checkpoint: %+v", last)
	}
}

func TestCountsAndFilter(t *testing.T) {
	s, _ := testClock(t)

	c := s.Modifications.Counts()
	if c.Pending != 2 || c.Approved != 1 || c.Rejected != 0 || c.Total != 4 {
		t.Fatalf("unexpected counts: %+v", c)
	}

	pending := s.Modifications.ListFiltered("pending")
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	all := s.Modifications.ListFiltered("all")
	if len(all) != 4 {
		t.Fatalf("expected 4 total, got %d", len(all))
	}
}

func TestReturnedTimelineIsACopy(t *testing.T) {
	s, _ := testClock(t)

	r, err := s.Modifications.Get("mod-004")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	r.Timeline[0].Completed = false
	r.Timeline[0].Title = "tampered"

	again, err := s.Modifications.Get("mod-004")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if !again.Timeline[0].Completed || again.Timeline[0].Title == "tampered" {
		t.Fatalf("store state leaked through returned slice")
	}
}
