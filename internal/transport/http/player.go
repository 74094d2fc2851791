package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nadzzz/turntable/internal/action"
	"github.com/nadzzz/turntable/internal/dispatch"
	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/spotify"
)

// Runner executes one typed action. *dispatch.Dispatcher implements it, so a
// button press and a chat turn take the same path to the gateway.
type Runner interface {
	Run(ctx context.Context, a action.Action) (string, error)
}

// Library is the read side of the Spotify client used by the proxy routes.
type Library interface {
	PlayerState(ctx context.Context) (*spotify.PlayerState, error)
	CurrentTrack(ctx context.Context) (*spotify.PlayerState, error)
	Queue(ctx context.Context) (*spotify.Queue, error)
	SearchTracks(ctx context.Context, query string, limit int) ([]spotify.Track, error)
	Playlists(ctx context.Context, limit int) ([]spotify.Playlist, error)
	CreatePlaylist(ctx context.Context, name, description string) (*spotify.Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID string) ([]spotify.PlaylistItem, error)
	AddTracksToPlaylist(ctx context.Context, playlistID string, uris []string) error
	TopTracks(ctx context.Context, timeRange string, limit int) ([]spotify.Track, error)
	TopArtists(ctx context.Context, timeRange string, limit int) ([]spotify.Artist, error)
	ToggleSaved(ctx context.Context, trackID string) (bool, error)
}

func (t *Transport) mountPlayer(r chi.Router) {
	r.Route("/api/player", func(r chi.Router) {
		r.Get("/", t.handlePlayerState)
		r.Get("/current", t.handleCurrentTrack)
		r.Get("/queue", t.handleQueue)

		r.Put("/play", t.handlePlay)
		r.Put("/pause", t.handlePause)
		r.Post("/next", t.handleNext)
		r.Post("/previous", t.handlePrevious)
		r.Put("/seek", t.handleSeek)
		r.Put("/volume", t.handleVolume)
		r.Put("/shuffle", t.handleShuffle)
		r.Put("/repeat", t.handleRepeat)
		r.Post("/queue", t.handleAddToQueue)
	})

	r.Get("/api/search", t.handleSearch)
	r.Route("/api/playlists", func(r chi.Router) {
		r.Get("/", t.handleListPlaylists)
		r.Post("/", t.handleCreatePlaylist)
		r.Get("/{playlistID}/tracks", t.handlePlaylistTracks)
		r.Post("/{playlistID}/tracks", t.handleAddPlaylistTracks)
	})
	r.Get("/api/me/top/tracks", t.handleTopTracks)
	r.Get("/api/me/top/artists", t.handleTopArtists)
	r.Put("/api/tracks/{trackID}/like", t.handleToggleLike)
}

// gatewayStatus maps a gateway failure to an HTTP status.
func gatewayStatus(err error) int {
	var apiErr *spotify.APIError
	switch {
	case errors.Is(err, spotify.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, spotify.ErrNoActiveDevice), errors.Is(err, dispatch.ErrNoTracks):
		return http.StatusNotFound
	case errors.Is(err, spotify.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusNotFound {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// param copies one query parameter into the action arguments.
type param func(q map[string][]string, args map[string]any)

func stringParam(name string) param {
	return renamed(name, name)
}

func renamed(from, to string) param {
	return func(q map[string][]string, args map[string]any) {
		if v := first(q, from); v != "" {
			args[to] = v
		}
	}
}

// intParam passes the raw text as a json.Number so range and type checks
// stay in action.Parse.
func intParam(name string) param {
	return func(q map[string][]string, args map[string]any) {
		if v := first(q, name); v != "" {
			args[name] = json.Number(v)
		}
	}
}

func boolParam(name string) param {
	return func(q map[string][]string, args map[string]any) {
		v := first(q, name)
		if v == "" {
			return
		}
		if b, err := strconv.ParseBool(v); err == nil {
			args[name] = b
		} else {
			args[name] = v
		}
	}
}

func first(q map[string][]string, name string) string {
	if vs := q[name]; len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func (t *Transport) fromQuery(kind action.Kind, params ...param) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		args := map[string]any{}
		q := r.URL.Query()
		for _, p := range params {
			p(q, args)
		}
		t.runAction(w, r, kind, args)
	}
}

// handlePlay starts a track or context when a uri is given and resumes
// otherwise.
//
// @Summary  Play or resume
// @Tags     player
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body  body      object  false  "{\"uri\": \"spotify:track:...\"}"
// @Success  200   {object}  message.ActionResult
// @Failure  400   {object}  errorBody
// @Failure  401   {object}  errorBody
// @Failure  404   {object}  errorBody  "No active device"
// @Router   /api/player/play [put]
func (t *Transport) handlePlay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URI string `json:"uri"`
	}
	if status, err := decodeJSONBody(w, r, &body, true); err != nil {
		respondError(w, status, err)
		return
	}
	if uri := strings.TrimSpace(body.URI); uri != "" {
		t.runAction(w, r, action.KindPlayTrack, map[string]any{"uri": uri})
		return
	}
	t.runAction(w, r, action.KindResumePlayback, map[string]any{})
}

// @Summary  Pause playback
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  message.ActionResult
// @Failure  401  {object}  errorBody
// @Failure  404  {object}  errorBody  "No active device"
// @Router   /api/player/pause [put]
func (t *Transport) handlePause(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindPausePlayback)(w, r)
}

// @Summary  Skip to the next track
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  message.ActionResult
// @Failure  401  {object}  errorBody
// @Failure  404  {object}  errorBody  "No active device"
// @Router   /api/player/next [post]
func (t *Transport) handleNext(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindSkipToNext)(w, r)
}

// @Summary  Skip to the previous track
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  message.ActionResult
// @Failure  401  {object}  errorBody
// @Failure  404  {object}  errorBody  "No active device"
// @Router   /api/player/previous [post]
func (t *Transport) handlePrevious(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindSkipToPrevious)(w, r)
}

// @Summary  Seek within the current track
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Param    position_ms  query     int  true  "Position in milliseconds"
// @Success  200          {object}  message.ActionResult
// @Failure  400          {object}  errorBody
// @Failure  404          {object}  errorBody  "No active device"
// @Router   /api/player/seek [put]
func (t *Transport) handleSeek(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindSeek, intParam("position_ms"))(w, r)
}

// @Summary  Set the volume
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Param    volume_percent  query     int  true  "Volume (0-100)"
// @Success  200             {object}  message.ActionResult
// @Failure  400             {object}  errorBody
// @Failure  404             {object}  errorBody  "No active device"
// @Router   /api/player/volume [put]
func (t *Transport) handleVolume(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindSetVolume, intParam("volume_percent"))(w, r)
}

// @Summary  Turn shuffle on or off
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Param    state  query     bool  true  "Shuffle state"
// @Success  200    {object}  message.ActionResult
// @Failure  400    {object}  errorBody
// @Failure  404    {object}  errorBody  "No active device"
// @Router   /api/player/shuffle [put]
func (t *Transport) handleShuffle(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindShuffle, boolParam("state"))(w, r)
}

// @Summary  Set the repeat mode
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Param    state  query     string  true  "track, context or off"
// @Success  200    {object}  message.ActionResult
// @Failure  400    {object}  errorBody
// @Failure  404    {object}  errorBody  "No active device"
// @Router   /api/player/repeat [put]
func (t *Transport) handleRepeat(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindRepeat, stringParam("state"))(w, r)
}

// handleAddToQueue queues uri, or the first search hit for q.
//
// @Summary  Add a track to the queue
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Param    uri  query     string  false  "Track URI"
// @Param    q    query     string  false  "Search text; the first hit is queued"
// @Success  200  {object}  message.ActionResult
// @Failure  400  {object}  errorBody
// @Failure  404  {object}  errorBody  "No active device or no tracks found"
// @Router   /api/player/queue [post]
func (t *Transport) handleAddToQueue(w http.ResponseWriter, r *http.Request) {
	t.fromQuery(action.KindAddToQueue, stringParam("uri"), renamed("q", "query"))(w, r)
}

// runAction validates args for kind and runs the resulting action.
func (t *Transport) runAction(w http.ResponseWriter, r *http.Request, kind action.Kind, args map[string]any) {
	a, err := action.Parse(string(kind), args)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	detail, err := t.runner.Run(r.Context(), a)
	if err != nil {
		respondError(w, gatewayStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, message.ActionResult{
		Action:    string(kind),
		Args:      args,
		Succeeded: true,
		Detail:    detail,
	})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: expected integer, got %q", name, v)
	}
	return n, nil
}

func timeRange(r *http.Request) (string, error) {
	tr := r.URL.Query().Get("time_range")
	switch tr {
	case "", "short_term", "medium_term", "long_term":
		return tr, nil
	}
	return "", fmt.Errorf("time_range: %q is not one of short_term, medium_term, long_term", tr)
}

// read answers a GET proxy route. A nil pointer result means Spotify had
// nothing to report and becomes 204.
func read[T any](w http.ResponseWriter, v T, err error) {
	if err != nil {
		respondError(w, gatewayStatus(err), err)
		return
	}
	if isNil(v) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func isNil(v any) bool {
	switch p := v.(type) {
	case *spotify.PlayerState:
		return p == nil
	case *spotify.Queue:
		return p == nil
	}
	return false
}

// handlePlayerState returns the full playback state.
//
// @Summary  Get playback state
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  spotify.PlayerState
// @Success  204  "Nothing is playing"
// @Router   /api/player [get]
func (t *Transport) handlePlayerState(w http.ResponseWriter, r *http.Request) {
	st, err := t.library.PlayerState(r.Context())
	read(w, st, err)
}

// @Summary  Get the current track
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  spotify.PlayerState
// @Router   /api/player/current [get]
func (t *Transport) handleCurrentTrack(w http.ResponseWriter, r *http.Request) {
	st, err := t.library.CurrentTrack(r.Context())
	read(w, st, err)
}

// @Summary  Get the playback queue
// @Tags     player
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  spotify.Queue
// @Router   /api/player/queue [get]
func (t *Transport) handleQueue(w http.ResponseWriter, r *http.Request) {
	q, err := t.library.Queue(r.Context())
	read(w, q, err)
}

// @Summary  Search tracks
// @Tags     library
// @Produce  json
// @Security BearerAuth
// @Param    q      query  string  true   "Search text"
// @Param    limit  query  int     false  "Max results (1-50)"
// @Success  200    {array}  spotify.Track
// @Router   /api/search [get]
func (t *Transport) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondError(w, http.StatusBadRequest, errors.New("q is required"))
		return
	}
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	tracks, err := t.library.SearchTracks(r.Context(), q, limit)
	read(w, tracks, err)
}

// @Summary  List the user's playlists
// @Tags     library
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  spotify.Playlist
// @Router   /api/playlists [get]
func (t *Transport) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	lists, err := t.library.Playlists(r.Context(), limit)
	read(w, lists, err)
}

// @Summary  Create an empty playlist
// @Tags     library
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body  body      object  true  "{\"name\": string, \"description\": string}"
// @Success  201   {object}  spotify.Playlist
// @Router   /api/playlists [post]
func (t *Transport) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if status, err := decodeJSONBody(w, r, &body, false); err != nil {
		respondError(w, status, err)
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		respondError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	pl, err := t.library.CreatePlaylist(r.Context(), strings.TrimSpace(body.Name), body.Description)
	if err != nil {
		respondError(w, gatewayStatus(err), err)
		return
	}
	respondJSON(w, http.StatusCreated, pl)
}

// @Summary  List a playlist's tracks
// @Tags     library
// @Produce  json
// @Security BearerAuth
// @Param    playlistID  path   string  true  "Playlist ID"
// @Success  200         {array}  spotify.PlaylistItem
// @Router   /api/playlists/{playlistID}/tracks [get]
func (t *Transport) handlePlaylistTracks(w http.ResponseWriter, r *http.Request) {
	items, err := t.library.PlaylistTracks(r.Context(), chi.URLParam(r, "playlistID"))
	read(w, items, err)
}

// @Summary  Append tracks to a playlist
// @Tags     library
// @Accept   json
// @Security BearerAuth
// @Param    playlistID  path  string  true  "Playlist ID"
// @Param    body        body  object  true  "{\"uris\": [string]}"
// @Success  204
// @Router   /api/playlists/{playlistID}/tracks [post]
func (t *Transport) handleAddPlaylistTracks(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URIs []string `json:"uris"`
	}
	if status, err := decodeJSONBody(w, r, &body, false); err != nil {
		respondError(w, status, err)
		return
	}
	if len(body.URIs) == 0 {
		respondError(w, http.StatusBadRequest, errors.New("uris is required"))
		return
	}
	if err := t.library.AddTracksToPlaylist(r.Context(), chi.URLParam(r, "playlistID"), body.URIs); err != nil {
		respondError(w, gatewayStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary  Top tracks
// @Tags     library
// @Produce  json
// @Security BearerAuth
// @Param    time_range  query  string  false  "short_term, medium_term or long_term"
// @Param    limit       query  int     false  "Max results (1-50)"
// @Success  200         {array}  spotify.Track
// @Router   /api/me/top/tracks [get]
func (t *Transport) handleTopTracks(w http.ResponseWriter, r *http.Request) {
	tr, limit, ok := topParams(w, r)
	if !ok {
		return
	}
	tracks, err := t.library.TopTracks(r.Context(), tr, limit)
	read(w, tracks, err)
}

// @Summary  Top artists
// @Tags     library
// @Produce  json
// @Security BearerAuth
// @Param    time_range  query  string  false  "short_term, medium_term or long_term"
// @Param    limit       query  int     false  "Max results (1-50)"
// @Success  200         {array}  spotify.Artist
// @Router   /api/me/top/artists [get]
func (t *Transport) handleTopArtists(w http.ResponseWriter, r *http.Request) {
	tr, limit, ok := topParams(w, r)
	if !ok {
		return
	}
	artists, err := t.library.TopArtists(r.Context(), tr, limit)
	read(w, artists, err)
}

func topParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	tr, err := timeRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return "", 0, false
	}
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return "", 0, false
	}
	return tr, limit, true
}

// handleToggleLike flips whether a track is in the user's library.
//
// @Summary  Like or unlike a track
// @Tags     library
// @Produce  json
// @Security BearerAuth
// @Param    trackID  path  string  true  "Track ID"
// @Success  200      {object}  object  "{\"saved\": bool}"
// @Router   /api/tracks/{trackID}/like [put]
func (t *Transport) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	saved, err := t.library.ToggleSaved(r.Context(), chi.URLParam(r, "trackID"))
	if err != nil {
		respondError(w, gatewayStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}
