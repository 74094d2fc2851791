// Package spotify is a small typed client for the Spotify Web API: the
// playback gateway the assistant drives.
package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/nadzzz/turntable/internal/config"
)

// Scopes lists the OAuth scopes the assistant needs when the user signs in.
var Scopes = []string{
	"user-read-email",
	"user-read-private",
	"user-read-playback-state",
	"user-modify-playback-state",
	"user-read-currently-playing",
	"user-library-read",
	"user-library-modify",
	"playlist-read-private",
	"playlist-read-collaborative",
	"playlist-modify-public",
	"playlist-modify-private",
	"user-top-read",
}

type tokenKey struct{}

// WithToken returns a context carrying the user's Spotify access token.
// Requests made with that context use it instead of the client's own
// token source.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the access token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(string)
	return tok, ok && tok != ""
}

// Client talks to the Spotify Web API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       oauth2.TokenSource // nil when no refresh token is configured
	limiter      *rate.Limiter      // nil disables client-side limiting
	maxRetries   int
	retryInitial time.Duration
	retryMax     time.Duration
}

// New creates a Client from configuration.
func New(cfg config.SpotifyConfig) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		maxRetries:   cfg.MaxRetries,
		retryInitial: cfg.RetryInitial,
		retryMax:     cfg.RetryMax,
	}
	if c.baseURL == "" {
		c.baseURL = "https://api.spotify.com/v1"
	}
	if c.retryInitial <= 0 {
		c.retryInitial = 200 * time.Millisecond
	}
	if c.retryMax < c.retryInitial {
		c.retryMax = c.retryInitial
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	if cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.RefreshToken != "" {
		oc := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
			Scopes: Scopes,
		}
		base := &oauth2.Token{RefreshToken: cfg.RefreshToken}
		// Refreshes are made with a background context so a cancelled
		// request does not poison the cached token.
		c.tokens = oauth2.ReuseTokenSource(nil, oc.TokenSource(context.Background(), base))
		slog.Info("spotify refresh-token source configured", "token_url", cfg.TokenURL)
	}
	return c
}

// call describes one API request.
type call struct {
	method     string
	path       string
	query      url.Values
	body       any
	idempotent bool
}

// do performs c and decodes a JSON response into out (when non-nil and the
// response has a body). It returns the final HTTP status code.
func (c *Client) do(ctx context.Context, req call, out any) (int, error) {
	token, err := c.token(ctx)
	if err != nil {
		return 0, err
	}

	var payload []byte
	if req.body != nil {
		payload, err = json.Marshal(req.body)
		if err != nil {
			return 0, fmt.Errorf("encoding %s %s body: %w", req.method, req.path, err)
		}
	}

	attempts := 1
	if req.idempotent {
		attempts += c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if ra := retryAfter(lastErr); ra > c.retryMax {
				slog.Debug("spotify retry-after exceeds retry budget",
					"method", req.method, "path", req.path, "retry_after", ra)
				break
			}
			delay := c.backoff(attempt-1, lastErr)
			slog.Debug("retrying spotify request",
				"method", req.method, "path", req.path, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(delay):
			}
		}

		status, err := c.once(ctx, token, req, payload, out)
		if err == nil {
			return status, nil
		}
		lastErr = err
		if !isRetryable(err) {
			break
		}
	}
	return 0, lastErr
}

// once sends a single HTTP request.
func (c *Client) once(ctx context.Context, token string, req call, payload []byte, out any) (int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, parseError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading %s %s response: %w", req.method, req.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding %s %s response: %w", req.method, req.path, err)
	}
	return resp.StatusCode, nil
}

// token picks the bearer credential for ctx.
func (c *Client) token(ctx context.Context) (string, error) {
	if tok, ok := TokenFromContext(ctx); ok {
		return tok, nil
	}
	if c.tokens == nil {
		return "", ErrUnauthorized
	}
	tok, err := c.tokens.Token()
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			return "", fmt.Errorf("refreshing spotify token: %w: %s", ErrUnauthorized, re.ErrorCode)
		}
		return "", fmt.Errorf("refreshing spotify token: %w", err)
	}
	return tok.AccessToken, nil
}

// backoff returns the wait before retry number attempt+1: exponential with
// jitter. A Retry-After from the server wins when larger. The result never
// exceeds retryMax.
func (c *Client) backoff(attempt int, lastErr error) time.Duration {
	delay := float64(c.retryInitial)
	for i := 0; i < attempt; i++ {
		delay *= 2
	}
	if delay > float64(c.retryMax) {
		delay = float64(c.retryMax)
	}
	d := time.Duration(delay*0.75 + rand.Float64()*delay*0.5)

	if ra := retryAfter(lastErr); ra > d {
		d = ra
	}
	return min(d, c.retryMax)
}

func retryAfter(err error) time.Duration {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.RetryAfter
	}
	return 0
}
