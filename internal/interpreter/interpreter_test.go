package interpreter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/turntable/internal/action"
	"github.com/nadzzz/turntable/internal/dispatch"
	"github.com/nadzzz/turntable/internal/events"
	"github.com/nadzzz/turntable/internal/llm"
	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/spotify"
)

// scriptedModel returns a fixed reply and records prompts.
type scriptedModel struct {
	reply   string
	err     error
	prompts []llm.Prompt
}

func (m *scriptedModel) Name() string { return "scripted" }

func (m *scriptedModel) Generate(_ context.Context, p llm.Prompt) (string, error) {
	m.prompts = append(m.prompts, p)
	return m.reply, m.err
}

// fakeGateway records calls and serves canned search results.
type fakeGateway struct {
	calls   []string
	search  map[string][]spotify.Track
	failure map[string]error
}

func (g *fakeGateway) record(name string) error {
	g.calls = append(g.calls, name)
	return g.failure[name]
}

func (g *fakeGateway) Play(_ context.Context, uri string) error   { return g.record("play:" + uri) }
func (g *fakeGateway) Pause(context.Context) error                { return g.record("pause") }
func (g *fakeGateway) Next(context.Context) error                 { return g.record("next") }
func (g *fakeGateway) Previous(context.Context) error             { return g.record("previous") }
func (g *fakeGateway) Seek(context.Context, int) error            { return g.record("seek") }
func (g *fakeGateway) SetVolume(context.Context, int) error       { return g.record("volume") }
func (g *fakeGateway) Shuffle(context.Context, bool) error        { return g.record("shuffle") }
func (g *fakeGateway) Repeat(context.Context, string) error       { return g.record("repeat") }
func (g *fakeGateway) AddToQueue(_ context.Context, u string) error { return g.record("queue:" + u) }

func (g *fakeGateway) SearchTracks(_ context.Context, q string, _ int) ([]spotify.Track, error) {
	if err := g.record("search:" + q); err != nil {
		return nil, err
	}
	return g.search[q], nil
}

func (g *fakeGateway) CreatePlaylist(_ context.Context, name, _ string) (*spotify.Playlist, error) {
	if err := g.record("create:" + name); err != nil {
		return nil, err
	}
	return &spotify.Playlist{ID: "pl"}, nil
}

func (g *fakeGateway) AddTracksToPlaylist(_ context.Context, id string, uris []string) error {
	return g.record("append:" + id + ":" + strings.Join(uris, ","))
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []events.Invalidation
}

func (p *recordingPublisher) Publish(_ context.Context, inv events.Invalidation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, inv)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func newTestInterpreter(reply string, gw *fakeGateway) (*Interpreter, *scriptedModel, *recordingPublisher) {
	model := &scriptedModel{reply: reply}
	pub := &recordingPublisher{}
	return New(model, dispatch.New(gw), WithPublisher(pub)), model, pub
}

func TestPauseTheMusic(t *testing.T) {
	gw := &fakeGateway{}
	in, model, pub := newTestInterpreter("I'll pause that.\n{\"function\":\"pausePlayback\",\"args\":{}}", gw)

	resp, err := in.Handle(context.Background(), &message.ChatRequest{Message: "pause the music"})
	require.NoError(t, err)

	assert.Equal(t, "I'll pause that.", resp.Response)
	require.Len(t, resp.FunctionCalls, 1)
	assert.Equal(t, "pausePlayback", resp.FunctionCalls[0].Action)
	assert.True(t, resp.FunctionCalls[0].Succeeded)
	assert.Equal(t, []string{"pause"}, gw.calls)
	assert.Equal(t, []string{"playerState"}, resp.Invalidate)
	assert.NotEmpty(t, resp.TurnID)

	require.Len(t, model.prompts, 1)
	assert.Equal(t, "pause the music", model.prompts[0].Message)
	assert.Contains(t, model.prompts[0].Instructions, "pausePlayback()")

	require.Len(t, pub.sent, 1)
	assert.Equal(t, resp.TurnID, pub.sent[0].TurnID)
}

func TestNoTracksFoundStillShowsNarrative(t *testing.T) {
	gw := &fakeGateway{}
	in, _, pub := newTestInterpreter(
		`Let me find that. {"function":"searchTracksAndPlay","args":{"query":"nobody-band-xyz"}}`, gw)

	res, err := in.Interpret(context.Background(), "play something by nobody-band-xyz")
	require.NoError(t, err)

	assert.Equal(t, "Let me find that.", res.Narrative)
	require.Len(t, res.Outcomes, 1)
	assert.False(t, res.Outcomes[0].Result.Succeeded)
	assert.Contains(t, res.Outcomes[0].Result.Error, "no tracks found")
	assert.Empty(t, res.Invalidate)
	assert.Empty(t, pub.sent)
}

func TestModelFailureAbortsTurn(t *testing.T) {
	gw := &fakeGateway{}
	model := &scriptedModel{err: errors.New("503 from provider")}
	in := New(model, dispatch.New(gw))

	resp, err := in.Handle(context.Background(), &message.ChatRequest{Message: "pause"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Contains(t, err.Error(), "503 from provider")
	require.NotNil(t, resp)
	assert.Equal(t, Apology, resp.Response)
	assert.Empty(t, resp.FunctionCalls)
	assert.Empty(t, gw.calls)
}

func TestEmptyMessage(t *testing.T) {
	in, model, _ := newTestInterpreter("hi", &fakeGateway{})

	_, err := in.Handle(context.Background(), &message.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, model.prompts)
}

func TestMixedBatchKeepsOrderAndContainsFailures(t *testing.T) {
	gw := &fakeGateway{failure: map[string]error{"next": errors.New("boom")}}
	reply := `Sure! {"function":"pausePlayback","args":{}} {"function":"dance","args":{}} ` +
		`{"function":"skipToNext","args":{}} {"function":"setVolume","args":{"volume_percent":30}}`
	in, _, _ := newTestInterpreter(reply, gw)

	res, err := in.Interpret(context.Background(), "do stuff")
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 4)
	got := make([]bool, len(res.Outcomes))
	for i, o := range res.Outcomes {
		got[i] = o.Result.Succeeded
	}
	assert.Equal(t, []bool{true, false, false, true}, got)
	assert.Equal(t, []string{"pause", "next", "volume"}, gw.calls)
	assert.Equal(t, "Sure!", res.Narrative)
	assert.Equal(t, []string{"playerState"}, res.Invalidate)
}

func TestPlaylistTurn(t *testing.T) {
	gw := &fakeGateway{search: map[string][]spotify.Track{
		"a": {{URI: "a1"}},
		"b": {{URI: "b1"}, {URI: "b2"}, {URI: "b3"}},
	}}
	reply := `Building it! {"function":"createPlaylist","args":{"name":"Mix","queries":[{"query":"a","limit":2},{"query":"b","limit":3}]}}`
	in, _, _ := newTestInterpreter(reply, gw)

	res, err := in.Interpret(context.Background(), "make me a playlist")
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes[0].Result.Succeeded, res.Outcomes[0].Result.Error)
	assert.Equal(t, []string{"create:Mix", "search:a", "search:b", "append:pl:a1,b1,b2,b3"}, gw.calls)
	assert.Equal(t, []string{"playlists"}, res.Invalidate)
}

func TestReauthenticateSurfaces(t *testing.T) {
	gw := &fakeGateway{failure: map[string]error{"pause": &spotify.APIError{StatusCode: 401, Message: "expired"}}}
	in, _, _ := newTestInterpreter(`OK {"function":"pausePlayback","args":{}}`, gw)

	resp, err := in.Handle(context.Background(), &message.ChatRequest{Message: "pause"})
	require.NoError(t, err)
	assert.True(t, resp.Reauthenticate)
	assert.True(t, resp.FunctionCalls[0].Reauthenticate)
}

func TestNarrativeFallbacks(t *testing.T) {
	gw := &fakeGateway{}
	in, _, _ := newTestInterpreter(`{"function":"pausePlayback","args":{}}`, gw)
	res, err := in.Interpret(context.Background(), "pause")
	require.NoError(t, err)
	assert.Equal(t, "I'll pause playback for you.", res.Narrative)

	in, _, _ = newTestInterpreter(`<think>hmm</think>`, gw)
	res, err = in.Interpret(context.Background(), "???")
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, res.Narrative)
	assert.Empty(t, res.Outcomes)
}

func TestThinkingIsStripped(t *testing.T) {
	gw := &fakeGateway{}
	in, _, _ := newTestInterpreter(`<think>the user wants quiet {"function":"setVolume"}</think>Turning it down. {"function":"setVolume","args":{"volume_percent":20}}`, gw)

	res, err := in.Interpret(context.Background(), "quieter")
	require.NoError(t, err)
	assert.Equal(t, "Turning it down.", res.Narrative)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, []string{"volume"}, gw.calls)
}

func TestHandleUsesAssignedTurnID(t *testing.T) {
	in, _, _ := newTestInterpreter("Hello!", &fakeGateway{})
	resp, err := in.Handle(context.Background(), &message.ChatRequest{Message: "hi", TurnID: "turn-7", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "turn-7", resp.TurnID)
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "Hello!", resp.Response)
	assert.NotNil(t, resp.FunctionCalls)
}

func TestInstructionsListEveryAction(t *testing.T) {
	ins := Instructions()
	for _, k := range action.Kinds() {
		assert.Contains(t, ins, action.Usage(k))
	}
	assert.Contains(t, ins, `{"function": "<name>", "args": {...}}`)
}

// cancellingModel answers and then cancels the caller's context, as a
// client disconnect right after the model call would.
type cancellingModel struct {
	reply  string
	cancel context.CancelFunc
}

func (m *cancellingModel) Name() string { return "cancelling" }

func (m *cancellingModel) Generate(context.Context, llm.Prompt) (string, error) {
	m.cancel()
	return m.reply, nil
}

// ctxGateway fails calls whose context is already done.
type ctxGateway struct {
	fakeGateway
}

func (g *ctxGateway) Pause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.fakeGateway.Pause(ctx)
}

func (g *ctxGateway) SetVolume(ctx context.Context, v int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.fakeGateway.SetVolume(ctx, v)
}

func TestTurnRunsToCompletionAfterCallerCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(spotify.WithToken(context.Background(), "tok"))
	defer cancel()

	gw := &ctxGateway{}
	pub := &recordingPublisher{}
	model := &cancellingModel{
		reply:  `Done. {"function":"pausePlayback","args":{}} {"function":"setVolume","args":{"volume_percent":40}}`,
		cancel: cancel,
	}
	in := New(model, dispatch.New(gw), WithPublisher(pub))

	resp, err := in.Handle(ctx, &message.ChatRequest{Message: "pause and set volume to 40"})
	require.NoError(t, err)
	require.Error(t, ctx.Err())

	require.Len(t, resp.FunctionCalls, 2)
	for _, c := range resp.FunctionCalls {
		assert.True(t, c.Succeeded, c.Error)
	}
	assert.Equal(t, []string{"pause", "volume"}, gw.calls)
	assert.Len(t, pub.sent, 1)
}

func TestOnlyRejectedRequestsGetFallbackNarrative(t *testing.T) {
	gw := &fakeGateway{}
	in, _, _ := newTestInterpreter(`{"function":"dance","args":{}}`, gw)

	resp, err := in.Handle(context.Background(), &message.ChatRequest{Message: "dance"})
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, resp.Response)
	require.Len(t, resp.FunctionCalls, 1)
	assert.False(t, resp.FunctionCalls[0].Succeeded)
	assert.Empty(t, gw.calls)
}
