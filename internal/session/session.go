// Package session keeps chat sessions: the ordered history of user and
// assistant turns a UI renders. History lives in memory only and is never
// fed back to the model.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/transport"
)

var (
	// ErrNotFound is returned for an unknown session or turn.
	ErrNotFound = errors.New("session not found")

	// ErrTurnFinal is returned when updating a turn that is already final.
	ErrTurnFinal = errors.New("turn is already final")
)

// Session is a chat session with its turns in append order.
type Session struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Turns     []message.Turn `json:"turns"`
}

// Summary describes a session without its turns.
type Summary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TurnCount int       `json:"turn_count"`
}

// Store persists sessions. Returned values are copies; mutating them does
// not change the store.
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id string) error

	// Append adds a turn. Empty ID and CreatedAt are filled in.
	Append(ctx context.Context, sessionID string, turn message.Turn) (message.Turn, error)

	// Finalize replaces a pending turn with its final content.
	Finalize(ctx context.Context, sessionID string, turn message.Turn) error
}

// MemoryStore is an in-process Store guarded by a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create implements Store.
func (m *MemoryStore) Create(_ context.Context) (*Session, error) {
	now := m.now().UTC()
	s := &Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now, Turns: []message.Turn{}}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	slog.Debug("session created", "session_id", s.ID)
	return clone(s), nil
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return clone(s), nil
}

// List implements Store. Most recently updated sessions come first.
func (m *MemoryStore) List(_ context.Context) ([]Summary, error) {
	m.mu.RLock()
	out := make([]Summary, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, Summary{ID: s.ID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt, TurnCount: len(s.Turns)})
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}

// Append implements Store.
func (m *MemoryStore) Append(_ context.Context, sessionID string, turn message.Turn) (message.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return message.Turn{}, fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	now := m.now().UTC()
	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = now
	}
	if turn.Status == "" {
		turn.Status = message.StatusFinal
	}
	s.Turns = append(s.Turns, turn)
	s.UpdatedAt = now
	return turn, nil
}

// Finalize implements Store. Only the content fields are replaced; ID, role
// and creation time stay as appended.
func (m *MemoryStore) Finalize(_ context.Context, sessionID string, turn message.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	for i := range s.Turns {
		t := &s.Turns[i]
		if t.ID != turn.ID {
			continue
		}
		if t.Status == message.StatusFinal {
			return fmt.Errorf("%w: %s", ErrTurnFinal, turn.ID)
		}
		t.Text = turn.Text
		t.Actions = turn.Actions
		t.Error = turn.Error
		t.Status = message.StatusFinal
		s.UpdatedAt = m.now().UTC()
		return nil
	}
	return fmt.Errorf("%w: turn %s", ErrNotFound, turn.ID)
}

func clone(s *Session) *Session {
	c := *s
	c.Turns = make([]message.Turn, len(s.Turns))
	copy(c.Turns, s.Turns)
	return &c
}

// Wrap records turns of requests that carry a session ID: the user turn, then
// a pending assistant turn that is finalized with the handler's answer.
// Requests without a session ID pass straight through.
func Wrap(store Store, next transport.Handler) transport.Handler {
	return func(ctx context.Context, req *message.ChatRequest) (*message.ChatResponse, error) {
		if req.SessionID == "" {
			return next(ctx, req)
		}

		if _, err := store.Append(ctx, req.SessionID, message.Turn{
			Role: message.RoleUser,
			Text: req.Message,
		}); err != nil {
			return nil, err
		}
		pending, err := store.Append(ctx, req.SessionID, message.Turn{
			Role:   message.RoleAssistant,
			Status: message.StatusPending,
		})
		if err != nil {
			return nil, err
		}
		req.TurnID = pending.ID

		resp, turnErr := next(ctx, req)

		final := message.Turn{ID: pending.ID}
		if resp != nil {
			resp.TurnID = pending.ID
			resp.SessionID = req.SessionID
			final.Text = resp.Response
			final.Actions = resp.FunctionCalls
			final.Error = resp.Error
		}
		if turnErr != nil && final.Error == "" {
			final.Error = turnErr.Error()
		}
		if err := store.Finalize(ctx, req.SessionID, final); err != nil {
			// The session may have been deleted while the turn ran.
			slog.Warn("could not finalize turn", "session_id", req.SessionID, "turn_id", pending.ID, "error", err)
		}
		return resp, turnErr
	}
}
