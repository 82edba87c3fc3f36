// Package notifier produces the synthetic alert feed: one system notification
// per interval for each logged-in user, scoped to the session lifetime.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
)

// Notifier runs one cancellable generator goroutine per logged-in user.
// Logout or server shutdown tears the goroutine down; intervals never leak.
type Notifier struct {
	store    *store.NotificationStore
	logger   *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// Config tunes the generator.
type Config struct {
	Interval time.Duration
}

// New creates a Notifier. A non-positive interval defaults to 30 seconds,
// matching the dashboard's refresh cadence.
func New(s *store.NotificationStore, logger *slog.Logger, cfg Config) *Notifier {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	return &Notifier{
		store:    s,
		logger:   logger,
		interval: cfg.Interval,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Start begins generating alerts for a user. A second Start for the same user
// replaces the previous generator.
func (n *Notifier) Start(ctx context.Context, userID string) {
	n.mu.Lock()
	if cancel, ok := n.cancels[userID]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	n.cancels[userID] = cancel
	n.mu.Unlock()

	go n.run(ctx, userID)
}

// Stop tears down the generator for a user, if any.
func (n *Notifier) Stop(userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if cancel, ok := n.cancels[userID]; ok {
		cancel()
		delete(n.cancels, userID)
	}
}

// StopAll tears down every generator, used on server shutdown.
func (n *Notifier) StopAll() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, cancel := range n.cancels {
		cancel()
		delete(n.cancels, id)
	}
}

func (n *Notifier) run(ctx context.Context, userID string) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	n.logger.Debug("notification generator started", "user", userID, "interval", n.interval)
	for {
		select {
		case <-ctx.Done():
			n.logger.Debug("notification generator stopped", "user", userID)
			return
		case <-ticker.C:
			n.store.Add(userID, models.NotifyInfo, "New Update", "System notification received")
		}
	}
}
