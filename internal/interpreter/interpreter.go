// Package interpreter runs chat turns: it asks the model once, mines the
// reply for action requests, executes them in order and assembles the
// answer.
//
// A turn moves through Composing, ModelCalled, Extracted, Executing and
// Completed and never goes back. The only failure that aborts a turn is the
// model call itself; every action failure is contained in its own result.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nadzzz/turntable/internal/action"
	"github.com/nadzzz/turntable/internal/dispatch"
	"github.com/nadzzz/turntable/internal/events"
	"github.com/nadzzz/turntable/internal/extract"
	"github.com/nadzzz/turntable/internal/llm"
	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/tracing"
)

var (
	// ErrModelUnavailable means the model call failed; no action was attempted.
	ErrModelUnavailable = errors.New("language model unavailable")

	// ErrEmptyMessage is returned for a blank chat message.
	ErrEmptyMessage = errors.New("message is required")
)

const (
	// Apology is shown when the model call fails.
	Apology = "Sorry, I encountered an error. Please try again."

	// fallbackReply is used when the model said nothing and asked for
	// nothing usable.
	fallbackReply = "I'm not sure how to help with that. Try saying something like 'pause', 'play', 'next track', or 'create a playlist called...'"

	// executeTimeout bounds the action phase, which no longer follows the
	// caller's cancellation.
	executeTimeout = 2 * time.Minute
)

// Phase is a step of the turn state machine.
type Phase string

const (
	PhaseComposing   Phase = "composing"
	PhaseModelCalled Phase = "model_called"
	PhaseExtracted   Phase = "extracted"
	PhaseExecuting   Phase = "executing"
	PhaseCompleted   Phase = "completed"
)

// Executor runs extracted requests in order. *dispatch.Dispatcher is the
// production implementation.
type Executor interface {
	Execute(ctx context.Context, reqs []extract.Request) []dispatch.Outcome
}

// Result is the outcome of one turn.
type Result struct {
	TurnID string

	// Narrative is the reply text with thinking and JSON removed.
	Narrative string

	// Outcomes holds one entry per extracted request, in extraction order.
	Outcomes []dispatch.Outcome

	// Invalidate lists the resources changed by successful actions, without
	// duplicates, in first-seen order.
	Invalidate []string

	// Reauthenticate is set when any action hit an expired credential.
	Reauthenticate bool
}

// Interpreter is stateless across turns and safe for concurrent use.
type Interpreter struct {
	gen          llm.Generator
	exec         Executor
	extractor    extract.Extractor
	publisher    events.Publisher
	instructions string
	modelTimeout time.Duration
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithExtractor replaces the default brace Scanner.
func WithExtractor(e extract.Extractor) Option {
	return func(i *Interpreter) { i.extractor = e }
}

// WithPublisher sets where invalidation events go. The default only logs.
func WithPublisher(p events.Publisher) Option {
	return func(i *Interpreter) { i.publisher = p }
}

// WithModelTimeout bounds the model call. Zero means no extra bound.
func WithModelTimeout(d time.Duration) Option {
	return func(i *Interpreter) { i.modelTimeout = d }
}

// New creates an Interpreter.
func New(gen llm.Generator, exec Executor, opts ...Option) *Interpreter {
	i := &Interpreter{
		gen:          gen,
		exec:         exec,
		extractor:    extract.New(),
		publisher:    events.LogPublisher{},
		instructions: Instructions(),
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Interpret runs one turn for text.
func (i *Interpreter) Interpret(ctx context.Context, text string) (*Result, error) {
	return i.run(ctx, uuid.NewString(), "", text)
}

// Handle adapts a chat request to a turn. It is the transport.Handler of the
// daemon. On model failure the response carries the apology and the
// returned error wraps ErrModelUnavailable.
func (i *Interpreter) Handle(ctx context.Context, req *message.ChatRequest) (*message.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	turnID := req.TurnID
	if turnID == "" {
		turnID = uuid.NewString()
	}

	res, err := i.run(ctx, turnID, req.SessionID, text)
	if err != nil {
		return &message.ChatResponse{
			TurnID:        turnID,
			SessionID:     req.SessionID,
			Response:      Apology,
			FunctionCalls: []message.ActionResult{},
			Error:         Apology,
		}, err
	}

	calls := make([]message.ActionResult, len(res.Outcomes))
	for idx, o := range res.Outcomes {
		calls[idx] = o.Result
	}
	return &message.ChatResponse{
		TurnID:         res.TurnID,
		SessionID:      req.SessionID,
		Response:       res.Narrative,
		FunctionCalls:  calls,
		Invalidate:     res.Invalidate,
		Reauthenticate: res.Reauthenticate,
	}, nil
}

func (i *Interpreter) run(ctx context.Context, turnID, sessionID, text string) (*Result, error) {
	start := time.Now()
	logger := slog.With("turn_id", turnID)
	if sessionID != "" {
		logger = logger.With("session_id", sessionID)
	}

	ctx, span := tracing.Tracer().Start(ctx, "chat turn", trace.WithAttributes(
		tracing.AttrTurnID.String(turnID),
		tracing.AttrSessionID.String(sessionID),
		tracing.AttrModel.String(i.gen.Name()),
	))
	defer span.End()
	defer func() { turnDuration.Observe(time.Since(start).Seconds()) }()

	phase := func(p Phase, attrs ...any) {
		logger.Debug("turn phase", append([]any{"phase", p}, attrs...)...)
		span.AddEvent(string(p))
	}

	phase(PhaseComposing, "message_length", len(text))
	prompt := llm.Prompt{Instructions: i.instructions, Message: text}

	raw, err := i.generate(ctx, prompt)
	if err != nil {
		turnsTotal.WithLabelValues("model_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "model unavailable")
		logger.Error("model call failed", "backend", i.gen.Name(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	phase(PhaseModelCalled, "reply_length", len(raw))

	narrative, reqs := i.extractor.Extract(raw)
	actionsPerTurn.Observe(float64(len(reqs)))
	phase(PhaseExtracted, "actions", len(reqs))
	span.SetAttributes(attribute.Int("turntable.actions", len(reqs)))

	// Once the model has answered, the turn runs to completion even if the
	// caller goes away. Values such as the token and the span carry over.
	execCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), executeTimeout)
	defer cancel()

	phase(PhaseExecuting)
	var outcomes []dispatch.Outcome
	if len(reqs) > 0 {
		outcomes = i.exec.Execute(execCtx, reqs)
	}

	res := &Result{
		TurnID:    turnID,
		Narrative: narrative,
		Outcomes:  outcomes,
	}
	var typed []action.Action
	seen := make(map[action.Resource]bool)
	for _, o := range outcomes {
		if o.Result.Reauthenticate {
			res.Reauthenticate = true
		}
		if o.Action == nil {
			continue
		}
		typed = append(typed, o.Action)
		if !o.Result.Succeeded {
			continue
		}
		for _, r := range action.Resources(o.Action.Kind()) {
			if !seen[r] {
				seen[r] = true
				res.Invalidate = append(res.Invalidate, string(r))
			}
		}
	}

	if res.Narrative == "" {
		if len(typed) > 0 {
			res.Narrative = action.Summarize(typed)
		} else {
			res.Narrative = fallbackReply
		}
	}

	if len(res.Invalidate) > 0 {
		inv := events.Invalidation{TurnID: turnID, SessionID: sessionID, Resources: res.Invalidate, At: time.Now().UTC()}
		if err := i.publisher.Publish(execCtx, inv); err != nil {
			logger.Warn("publishing invalidation failed", "error", err)
		}
	}

	phase(PhaseCompleted)
	turnsTotal.WithLabelValues("ok").Inc()
	logger.Info("turn completed", "actions", len(outcomes), "invalidate", res.Invalidate, "duration", time.Since(start))
	return res, nil
}

// generate performs the turn's single model call.
func (i *Interpreter) generate(ctx context.Context, p llm.Prompt) (string, error) {
	if i.modelTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.modelTimeout)
		defer cancel()
	}
	start := time.Now()
	raw, err := i.gen.Generate(ctx, p)
	modelDuration.WithLabelValues(i.gen.Name()).Observe(time.Since(start).Seconds())
	return raw, err
}
