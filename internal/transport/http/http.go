// Package http implements the HTTP/WebSocket transport for turntable.
//
// It exposes the chat turn API, a WebSocket chat endpoint, session history
// and a thin proxy over the player so a web UI can render playback state.
// Every /api route and /ws read the caller's Spotify access token from the
// Authorization header.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/nadzzz/turntable/internal/config"
	"github.com/nadzzz/turntable/internal/session"
	"github.com/nadzzz/turntable/internal/spotify"
	"github.com/nadzzz/turntable/internal/transport"
)

const maxBodyBytes int64 = 64 << 10

// Transport implements transport.Transport over HTTP and WebSocket.
type Transport struct {
	port    int
	origins []string

	sessions session.Store
	runner   Runner
	library  Library

	mu     sync.Mutex
	server *http.Server
	closed bool
}

// Option configures optional route groups.
type Option func(*Transport)

// WithSessions mounts /api/sessions backed by store.
func WithSessions(store session.Store) Option {
	return func(t *Transport) { t.sessions = store }
}

// WithPlayer mounts the player proxy routes. Mutating routes run through
// runner; reads go straight to library.
func WithPlayer(runner Runner, library Library) Option {
	return func(t *Transport) {
		t.runner = runner
		t.library = library
	}
}

// New creates a new HTTP transport.
func New(cfg config.HTTPConfig, opts ...Option) *Transport {
	t := &Transport{port: cfg.Port, origins: cfg.AllowedOrigins}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Router builds the route tree around handler.
func (t *Transport) Router(handler transport.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Group(func(r chi.Router) {
		r.Use(bearerToken)

		r.Post("/api/chat", t.handleChat(handler))
		r.Get("/ws", t.handleWebSocket(handler))

		if t.sessions != nil {
			r.Route("/api/sessions", func(r chi.Router) {
				r.Post("/", t.handleCreateSession)
				r.Get("/", t.handleListSessions)
				r.Get("/{sessionID}", t.handleGetSession)
				r.Delete("/{sessionID}", t.handleDeleteSession)
			})
		}

		if t.runner != nil && t.library != nil {
			t.mountPlayer(r)
		}
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	return r
}

// Listen starts the HTTP server and routes incoming requests to the handler.
// A transport closed before Listen returns at once.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           t.Router(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.server = srv
	t.mu.Unlock()

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	t.mu.Lock()
	t.closed = true
	srv := t.server
	t.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// bearerToken attaches the caller's Spotify access token to the request
// context. Browsers cannot set headers on a WebSocket handshake, so /ws also
// accepts ?access_token=.
func bearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if h := r.Header.Get("Authorization"); h != "" {
			scheme, value, ok := strings.Cut(h, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(value) == "" {
				respondError(w, http.StatusUnauthorized, errors.New("malformed Authorization header"))
				return
			}
			token = strings.TrimSpace(value)
		} else if r.URL.Path == "/ws" {
			token = r.URL.Query().Get("access_token")
		}
		if token != "" {
			r = r.WithContext(spotify.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

// errorBody is the JSON shape of every non-2xx answer.
type errorBody struct {
	Error          string `json:"error"`
	Reauthenticate bool   `json:"reauthenticate,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, errorBody{
		Error:          err.Error(),
		Reauthenticate: errors.Is(err, spotify.ErrUnauthorized),
	})
}

// decodeJSONBody reads a size-limited JSON body into dst. An empty body is
// accepted when allowEmpty is set.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return 0, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body too large (max %d bytes)", maxBodyBytes)
		}
		return http.StatusBadRequest, fmt.Errorf("invalid json: %w", err)
	}
	return 0, nil
}
