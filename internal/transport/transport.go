// Package transport defines the interface for pluggable chat transports.
//
// Each transport (HTTP/WebSocket, gRPC) implements this interface and is
// handed the chat turn handler at startup. The handler doesn't care how the
// message arrived; it only works with the Handler contract.
package transport

import (
	"context"

	"github.com/nadzzz/turntable/internal/message"
)

// Handler runs one chat turn. A non-nil error means the turn failed as a
// whole; the response still carries a user-facing message in that case.
type Handler func(ctx context.Context, req *message.ChatRequest) (*message.ChatResponse, error)

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "grpc", "http").
	Name() string

	// Listen starts accepting chat messages and passes them to the handler.
	// It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
