package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"servicehub-server/internal/models"
)

// NotificationStore holds per-user alert feeds.
type NotificationStore struct {
	mu    sync.RWMutex
	items map[string]*models.Notification
	now   func() time.Time
}

func newNotificationStore(now func() time.Time) *NotificationStore {
	return &NotificationStore{items: make(map[string]*models.Notification), now: now}
}

// Add appends an alert to a user's feed and returns it.
func (s *NotificationStore) Add(userID string, typ models.NotificationType, title, message string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: s.now(),
	}
	s.items[n.ID] = n
	return *n
}

// ListForUser returns a user's alerts, newest first.
func (s *NotificationStore) ListForUser(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Notification
	for _, n := range s.items {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

// UnreadCount returns the number of unread alerts for a user.
func (s *NotificationStore) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.items {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one alert as read.
func (s *NotificationStore) MarkRead(id string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.items[id]
	if !ok {
		return models.Notification{}, models.NotFoundError{Entity: "notification", ID: id}
	}
	n.Read = true
	return *n, nil
}

// MarkAllRead flags every alert of a user as read.
func (s *NotificationStore) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		if n.UserID == userID {
			n.Read = true
		}
	}
}

// ClearForUser drops a user's feed, used on logout alongside the session wipe.
func (s *NotificationStore) ClearForUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, n := range s.items {
		if n.UserID == userID {
			delete(s.items, id)
		}
	}
}

// insert is used by the seeder.
func (s *NotificationStore) insert(n *models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[n.ID] = n
}
