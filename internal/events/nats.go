package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/nadzzz/turntable/internal/config"
)

// natsConn is the part of *nats.Conn the publisher uses.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher publishes invalidations as JSON on a NATS subject. When the
// turn belongs to a session the session ID is appended as a subject token.
type NATSPublisher struct {
	conn    natsConn
	subject string
}

// NewNATSPublisher connects to NATS.
func NewNATSPublisher(cfg config.NATSConfig) (*NATSPublisher, error) {
	url := cfg.URL
	if url == "" {
		url = nats.DefaultURL
	}
	subject := cfg.Subject
	if subject == "" {
		subject = "turntable.invalidate"
	}

	conn, err := nats.Connect(url,
		nats.Name("turntable"),
		nats.Timeout(5*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// Publish implements Publisher.
func (p *NATSPublisher) Publish(_ context.Context, inv Invalidation) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal invalidation: %w", err)
	}
	subject := p.subject
	if inv.SessionID != "" {
		subject += "." + inv.SessionID
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// New returns the publisher selected by cfg.
func New(cfg config.EventsConfig) (Publisher, error) {
	if cfg.Backend == "nats" {
		return NewNATSPublisher(cfg.NATS)
	}
	return LogPublisher{}, nil
}
