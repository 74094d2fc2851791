// Package events publishes cache-invalidation notices after a chat turn
// changed something on Spotify, so other clients can refetch.
package events

import (
	"context"
	"log/slog"
	"time"
)

// Invalidation names the resources a turn changed.
type Invalidation struct {
	TurnID    string    `json:"turn_id"`
	SessionID string    `json:"session_id,omitempty"`
	Resources []string  `json:"resources"`
	At        time.Time `json:"at"`
}

// Publisher delivers invalidations. Publishing is best-effort: callers log
// errors and carry on.
type Publisher interface {
	Publish(ctx context.Context, inv Invalidation) error
	Close() error
}

// LogPublisher writes invalidations to the structured log.
type LogPublisher struct{}

// Publish implements Publisher.
func (LogPublisher) Publish(_ context.Context, inv Invalidation) error {
	slog.Info("resources invalidated", "turn_id", inv.TurnID, "session_id", inv.SessionID, "resources", inv.Resources)
	return nil
}

// Close implements Publisher.
func (LogPublisher) Close() error { return nil }
