// Package dispatch executes validated actions against the playback gateway.
//
// Each action kind maps to exactly one handler. Requests are executed
// strictly in order and each one is isolated: a schema error, a gateway
// failure or even a panic in one handler becomes a failed result for that
// action only, and the next action still runs.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nadzzz/turntable/internal/action"
	"github.com/nadzzz/turntable/internal/extract"
	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/spotify"
	"github.com/nadzzz/turntable/internal/tracing"
)

//go:generate mockgen -package=dispatch -destination=mock_gateway_test.go github.com/nadzzz/turntable/internal/dispatch Gateway

// Gateway is the subset of the Spotify client the handlers use.
type Gateway interface {
	Play(ctx context.Context, uri string) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Seek(ctx context.Context, positionMS int) error
	SetVolume(ctx context.Context, percent int) error
	Shuffle(ctx context.Context, on bool) error
	Repeat(ctx context.Context, state string) error
	AddToQueue(ctx context.Context, uri string) error
	SearchTracks(ctx context.Context, query string, limit int) ([]spotify.Track, error)
	CreatePlaylist(ctx context.Context, name, description string) (*spotify.Playlist, error)
	AddTracksToPlaylist(ctx context.Context, playlistID string, uris []string) error
}

var (
	// ErrNoTracks means a search returned nothing to play or add.
	ErrNoTracks = errors.New("no tracks found")

	// ErrHandlerPanic wraps a recovered panic from a handler.
	ErrHandlerPanic = errors.New("action handler panicked")
)

// Messages shown to the user for well-known failures.
const (
	msgSessionExpired = "Spotify session expired. Please sign in again."
	msgNoDevice       = "No active Spotify device. Start playing on one of your devices and try again."
	playlistNote      = "Created by Turntable"
)

type handler func(ctx context.Context, a action.Action) (detail string, err error)

// Outcome pairs a request's result with its typed action. Action is nil when
// the request failed validation.
type Outcome struct {
	Action action.Action
	Result message.ActionResult
}

// Dispatcher runs actions.
type Dispatcher struct {
	gw    Gateway
	table map[action.Kind]handler
}

// New creates a Dispatcher over gw. It panics if any registered action kind
// lacks a handler.
func New(gw Gateway) *Dispatcher {
	d := &Dispatcher{gw: gw}
	d.table = map[action.Kind]handler{
		action.KindPlayTrack:           d.playTrack,
		action.KindPausePlayback:       d.pause,
		action.KindResumePlayback:      d.resume,
		action.KindSkipToNext:          d.next,
		action.KindSkipToPrevious:      d.previous,
		action.KindSearchTracksAndPlay: d.searchAndPlay,
		action.KindCreatePlaylist:      d.createPlaylist,
		action.KindSeek:                d.seek,
		action.KindSetVolume:           d.setVolume,
		action.KindShuffle:             d.shuffle,
		action.KindRepeat:              d.repeat,
		action.KindAddToQueue:          d.addToQueue,
	}
	if missing := d.missingHandlers(); len(missing) > 0 {
		panic(fmt.Sprintf("dispatch: no handler for action kinds %v", missing))
	}
	return d
}

func (d *Dispatcher) missingHandlers() []action.Kind {
	var missing []action.Kind
	for _, k := range action.Kinds() {
		if _, ok := d.table[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Execute validates and runs reqs one after another, in order. It returns
// one outcome per request, also in order.
func (d *Dispatcher) Execute(ctx context.Context, reqs []extract.Request) []Outcome {
	outcomes := make([]Outcome, 0, len(reqs))
	for _, req := range reqs {
		res := message.ActionResult{Action: req.Kind, Args: req.Args}
		if res.Args == nil {
			res.Args = map[string]any{}
		}

		a, err := action.Parse(req.Kind, req.Args)
		if err != nil {
			slog.Warn("rejected action request", "action", req.Kind, "error", err)
			actionsTotal.WithLabelValues(kindLabel(req.Kind), outcomeInvalid).Inc()
			res.Error = err.Error()
			outcomes = append(outcomes, Outcome{Result: res})
			continue
		}

		detail, err := d.Run(ctx, a)
		if err != nil {
			res.Error = userMessage(err)
			res.Reauthenticate = errors.Is(err, spotify.ErrUnauthorized)
		} else {
			res.Succeeded = true
			res.Detail = detail
		}
		outcomes = append(outcomes, Outcome{Action: a, Result: res})
	}
	return outcomes
}

// Run executes one typed action. Panics in the handler are recovered and
// returned as errors wrapping ErrHandlerPanic.
func (d *Dispatcher) Run(ctx context.Context, a action.Action) (detail string, err error) {
	kind := a.Kind()
	ctx, span := tracing.Tracer().Start(ctx, "action "+string(kind),
		trace.WithAttributes(tracing.AttrActionKind.String(string(kind))))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("action handler panicked", "action", kind, "panic", r)
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}

		outcome := outcomeSuccess
		if err != nil {
			outcome = outcomeFailure
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Warn("action failed", "action", kind, "error", err)
		} else {
			slog.Info("action executed", "action", kind, "detail", detail)
		}
		actionsTotal.WithLabelValues(string(kind), outcome).Inc()
		actionDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
		span.End()
	}()

	h, ok := d.table[kind]
	if !ok {
		return "", &action.SchemaError{Kind: string(kind), Code: action.ErrUnknownAction}
	}
	return h(ctx, a)
}

// userMessage renders err for the chat UI.
func userMessage(err error) string {
	switch {
	case errors.Is(err, spotify.ErrUnauthorized):
		return msgSessionExpired
	case errors.Is(err, spotify.ErrNoActiveDevice):
		return msgNoDevice
	}
	return err.Error()
}

func (d *Dispatcher) playTrack(ctx context.Context, a action.Action) (string, error) {
	return "", d.gw.Play(ctx, a.(action.PlayTrack).URI)
}

func (d *Dispatcher) pause(ctx context.Context, _ action.Action) (string, error) {
	return "", d.gw.Pause(ctx)
}

func (d *Dispatcher) resume(ctx context.Context, _ action.Action) (string, error) {
	return "", d.gw.Play(ctx, "")
}

func (d *Dispatcher) next(ctx context.Context, _ action.Action) (string, error) {
	return "", d.gw.Next(ctx)
}

func (d *Dispatcher) previous(ctx context.Context, _ action.Action) (string, error) {
	return "", d.gw.Previous(ctx)
}

func (d *Dispatcher) seek(ctx context.Context, a action.Action) (string, error) {
	return "", d.gw.Seek(ctx, a.(action.Seek).PositionMS)
}

func (d *Dispatcher) setVolume(ctx context.Context, a action.Action) (string, error) {
	return "", d.gw.SetVolume(ctx, a.(action.SetVolume).VolumePercent)
}

func (d *Dispatcher) shuffle(ctx context.Context, a action.Action) (string, error) {
	return "", d.gw.Shuffle(ctx, a.(action.Shuffle).State)
}

func (d *Dispatcher) repeat(ctx context.Context, a action.Action) (string, error) {
	return "", d.gw.Repeat(ctx, string(a.(action.Repeat).State))
}

func (d *Dispatcher) searchAndPlay(ctx context.Context, a action.Action) (string, error) {
	t, err := d.firstHit(ctx, a.(action.SearchTracksAndPlay).Query)
	if err != nil {
		return "", err
	}
	if err := d.gw.Play(ctx, t.URI); err != nil {
		return "", err
	}
	return "playing " + trackLabel(t), nil
}

func (d *Dispatcher) addToQueue(ctx context.Context, a action.Action) (string, error) {
	q := a.(action.AddToQueue)
	if q.URI != "" {
		return "", d.gw.AddToQueue(ctx, q.URI)
	}
	t, err := d.firstHit(ctx, q.Query)
	if err != nil {
		return "", err
	}
	if err := d.gw.AddToQueue(ctx, t.URI); err != nil {
		return "", err
	}
	return "queued " + trackLabel(t), nil
}

func (d *Dispatcher) firstHit(ctx context.Context, query string) (spotify.Track, error) {
	tracks, err := d.gw.SearchTracks(ctx, query, 1)
	if err != nil {
		return spotify.Track{}, fmt.Errorf("searching %q: %w", query, err)
	}
	if len(tracks) == 0 {
		return spotify.Track{}, fmt.Errorf("%w for %q", ErrNoTracks, query)
	}
	return tracks[0], nil
}

func trackLabel(t spotify.Track) string {
	if len(t.Artists) == 0 {
		return t.Name
	}
	return t.Name + " by " + t.Artists[0].Name
}
