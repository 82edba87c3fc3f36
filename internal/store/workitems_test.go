package store

import (
	"errors"
	"math"
	"testing"
	"time"

	"servicehub-server/internal/models"
)

func TestTimerAccumulatesLoggedHours(t *testing.T) {
	s, clock := testClock(t)

	w, err := s.WorkItems.StartTimer("wi-003")
	if err != nil {
		t.Fatalf("start timer: %v", err)
	}
	if !w.IsTimerRunning || w.TimerStartTime == nil {
		t.Fatalf("timer not running: %+v", w)
	}
	if w.Status != models.WorkInProgress {
		t.Fatalf("starting a timer must move pending work in-progress, got %s", w.Status)
	}

	*clock = clock.Add(30 * time.Minute)
	w, err = s.WorkItems.PauseTimer("wi-003")
	if err != nil {
		t.Fatalf("pause timer: %v", err)
	}
	if w.IsTimerRunning || w.TimerStartTime != nil {
		t.Fatalf("timer still running after pause: %+v", w)
	}
	if math.Abs(w.LoggedHours-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 logged hours, got %v", w.LoggedHours)
	}
	// 0.5h of 2h estimated.
	if w.Progress != 25 {
		t.Fatalf("expected derived progress 25, got %d", w.Progress)
	}
}

func TestStartTimerIsIdempotent(t *testing.T) {
	s, clock := testClock(t)

	if _, err := s.WorkItems.StartTimer("wi-003"); err != nil {
		t.Fatalf("start: %v", err)
	}
	started := *clock
	*clock = clock.Add(10 * time.Minute)
	w, err := s.WorkItems.StartTimer("wi-003")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if w.TimerStartTime == nil || !w.TimerStartTime.Equal(started) {
		t.Fatalf("second start must not reset the running timer")
	}
}

func TestStartTimerStopsOtherTimers(t *testing.T) {
	s, clock := testClock(t)

	// wi-001 and wi-003 are both Sarah Smith's.
	if _, err := s.WorkItems.StartTimer("wi-001"); err != nil {
		t.Fatalf("start wi-001: %v", err)
	}
	*clock = clock.Add(time.Hour)

	if _, err := s.WorkItems.StartTimer("wi-003"); err != nil {
		t.Fatalf("start wi-003: %v", err)
	}

	prev, err := s.WorkItems.Get("wi-001")
	if err != nil {
		t.Fatalf("get wi-001: %v", err)
	}
	if prev.IsTimerRunning {
		t.Fatalf("starting another item must pause the running timer")
	}
	// Seeded 0.65 plus the elapsed hour.
	if math.Abs(prev.LoggedHours-1.65) > 1e-9 {
		t.Fatalf("elapsed time not banked, got %v", prev.LoggedHours)
	}
}

func TestPauseRequiresRunningTimer(t *testing.T) {
	s, _ := testClock(t)

	_, err := s.WorkItems.PauseTimer("wi-003")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestLogTimeRejectsNonPositiveHours(t *testing.T) {
	s, _ := testClock(t)

	for _, hours := range []float64{0, -1.5} {
		_, err := s.WorkItems.LogTime("wi-001", hours)
		var ve models.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected validation error for %v hours, got %v", hours, err)
		}
	}
}

func TestLogTimeDerivesProgress(t *testing.T) {
	s, _ := testClock(t)

	w, err := s.WorkItems.LogTime("wi-003", 1)
	if err != nil {
		t.Fatalf("log time: %v", err)
	}
	if w.LoggedHours != 1 {
		t.Fatalf("expected 1 logged hour, got %v", w.LoggedHours)
	}
	if w.Progress != 50 {
		t.Fatalf("expected derived progress 50, got %d", w.Progress)
	}

	// Derivation caps at 100 even past the estimate.
	w, err = s.WorkItems.LogTime("wi-003", 5)
	if err != nil {
		t.Fatalf("log time: %v", err)
	}
	if w.Progress != 100 {
		t.Fatalf("expected capped progress, got %d", w.Progress)
	}
}

func TestManualProgressSuspendsDerivation(t *testing.T) {
	s, _ := testClock(t)

	// wi-002 carries an operator-set progress of 45.
	w, err := s.WorkItems.LogTime("wi-002", 2)
	if err != nil {
		t.Fatalf("log time: %v", err)
	}
	if w.Progress != 45 {
		t.Fatalf("manual progress must not be recomputed, got %d", w.Progress)
	}
}

func TestUpdateStatusCompletes(t *testing.T) {
	s, _ := testClock(t)

	w, err := s.WorkItems.UpdateStatus("wi-001", models.WorkCompleted, 80, "All done, customer signed off", "Sarah Smith")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if w.Status != models.WorkCompleted {
		t.Fatalf("expected completed, got %s", w.Status)
	}
	if w.Progress != 100 {
		t.Fatalf("completion must force progress 100, got %d", w.Progress)
	}
	if len(w.Notes) != 1 || w.Notes[0].Author != "Sarah Smith" {
		t.Fatalf("note not recorded: %+v", w.Notes)
	}

	_, err = s.WorkItems.UpdateStatus("wi-001", models.WorkInProgress, 10, "", "Sarah Smith")
	var ise models.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("completed work must be terminal, got %v", err)
	}

	// Re-asserting "completed" is also a mutation and must be refused.
	_, err = s.WorkItems.UpdateStatus("wi-001", models.WorkCompleted, 100, "one more note", "Sarah Smith")
	if !errors.As(err, &ise) {
		t.Fatalf("completed work must refuse self-transition, got %v", err)
	}
	got, err := s.WorkItems.Get("wi-001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Notes) != 1 {
		t.Fatalf("refused update must not append notes, got %d", len(got.Notes))
	}
}

func TestUpdateStatusClampsProgress(t *testing.T) {
	s, _ := testClock(t)

	w, err := s.WorkItems.UpdateStatus("wi-001", models.WorkInProgress, 250, "", "Sarah Smith")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if w.Progress != 100 {
		t.Fatalf("expected clamp to 100, got %d", w.Progress)
	}
}

func TestCompletingStopsRunningTimer(t *testing.T) {
	s, clock := testClock(t)

	if _, err := s.WorkItems.StartTimer("wi-001"); err != nil {
		t.Fatalf("start timer: %v", err)
	}
	*clock = clock.Add(2 * time.Hour)

	w, err := s.WorkItems.UpdateStatus("wi-001", models.WorkCompleted, 100, "", "Sarah Smith")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if w.IsTimerRunning {
		t.Fatalf("completion must stop the timer")
	}
	if math.Abs(w.LoggedHours-2.65) > 1e-9 {
		t.Fatalf("elapsed time not banked on completion, got %v", w.LoggedHours)
	}
}
