// Package message defines the core data types flowing through a chat turn.
package message

import "time"

// ChatRequest is one user chat message from any transport.
type ChatRequest struct {
	// Message is the user's free-form text.
	Message string `json:"message"`

	// SessionID optionally attaches the turn to a chat session.
	SessionID string `json:"session_id,omitempty"`

	// TurnID is assigned server-side when the turn is recorded in a session.
	TurnID string `json:"-"`
}

// ActionResult is the outcome of one requested action, reported in the
// order the model asked for it.
type ActionResult struct {
	// Action is the kind name as written by the model (e.g., "pausePlayback").
	Action string `json:"action"`

	// Args holds the arguments as written by the model.
	Args map[string]any `json:"args"`

	// Succeeded is true when the action reached Spotify and took effect.
	Succeeded bool `json:"succeeded"`

	// Error describes why the action failed.
	Error string `json:"error,omitempty"`

	// Reauthenticate is set when the Spotify credential expired.
	Reauthenticate bool `json:"reauthenticate,omitempty"`

	// Detail is a short human-readable note (e.g., "added 10 tracks").
	Detail string `json:"detail,omitempty"`
}

// ChatResponse is the answer to a ChatRequest.
type ChatResponse struct {
	// TurnID identifies the assistant turn.
	TurnID string `json:"turn_id,omitempty"`

	// SessionID echoes the request's session.
	SessionID string `json:"session_id,omitempty"`

	// Response is the assistant's narrative text with all JSON removed.
	Response string `json:"response"`

	// FunctionCalls lists one result per extracted action request.
	FunctionCalls []ActionResult `json:"functionCalls"`

	// Invalidate names UI resources that changed (e.g., "playerState").
	Invalidate []string `json:"invalidate,omitempty"`

	// Reauthenticate is set when any action hit an expired credential.
	Reauthenticate bool `json:"reauthenticate,omitempty"`

	// Error is set when the turn failed as a whole.
	Error string `json:"error,omitempty"`
}

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Status is the lifecycle state of a turn.
type Status string

const (
	// StatusPending marks an assistant turn still being produced.
	StatusPending Status = "pending"

	// StatusFinal marks a turn that will never change again.
	StatusFinal Status = "final"
)

// Turn is one entry of a chat session's history.
type Turn struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Text      string         `json:"text"`
	Actions   []ActionResult `json:"actions,omitempty"`
	Status    Status         `json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
