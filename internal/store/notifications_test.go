package store

import (
	"errors"
	"testing"

	"servicehub-server/internal/models"
)

func TestNotificationReadFlow(t *testing.T) {
	s, _ := testClock(t)

	// User 1 has three seeded notifications, one already read.
	if got := s.Notifications.UnreadCount("1"); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}

	n, err := s.Notifications.MarkRead("ntf-001")
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !n.Read {
		t.Fatalf("notification not marked read")
	}
	if got := s.Notifications.UnreadCount("1"); got != 1 {
		t.Fatalf("expected 1 unread, got %d", got)
	}

	s.Notifications.MarkAllRead("1")
	if got := s.Notifications.UnreadCount("1"); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}

	_, err = s.Notifications.MarkRead("missing")
	var nf models.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNotificationsNewestFirst(t *testing.T) {
	s, _ := testClock(t)

	list := s.Notifications.ListForUser("1")
	if len(list) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].Timestamp.After(list[i-1].Timestamp) {
			t.Fatalf("notifications out of order at %d", i)
		}
	}
}
