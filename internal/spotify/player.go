package spotify

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Play starts playback of uri on the active device. A track URI is played
// on its own; any other URI (album, playlist, artist) is played as a
// context. An empty uri resumes the current playback.
func (c *Client) Play(ctx context.Context, uri string) error {
	var body any
	switch {
	case uri == "":
	case strings.HasPrefix(uri, "spotify:track:"):
		body = map[string]any{"uris": []string{uri}}
	default:
		body = map[string]any{"context_uri": uri}
	}
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/player/play", body: body, idempotent: true}, nil)
	return err
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context) error {
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/player/pause", idempotent: true}, nil)
	return err
}

// Next skips to the next track. Never retried: a duplicate would skip twice.
func (c *Client) Next(ctx context.Context) error {
	_, err := c.do(ctx, call{method: http.MethodPost, path: "/me/player/next"}, nil)
	return err
}

// Previous skips to the previous track.
func (c *Client) Previous(ctx context.Context) error {
	_, err := c.do(ctx, call{method: http.MethodPost, path: "/me/player/previous"}, nil)
	return err
}

// Seek moves the playhead to positionMS.
func (c *Client) Seek(ctx context.Context, positionMS int) error {
	q := url.Values{"position_ms": {strconv.Itoa(positionMS)}}
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/player/seek", query: q, idempotent: true}, nil)
	return err
}

// SetVolume sets the active device volume (0-100).
func (c *Client) SetVolume(ctx context.Context, percent int) error {
	q := url.Values{"volume_percent": {strconv.Itoa(percent)}}
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/player/volume", query: q, idempotent: true}, nil)
	return err
}

// Shuffle toggles shuffle mode.
func (c *Client) Shuffle(ctx context.Context, on bool) error {
	q := url.Values{"state": {strconv.FormatBool(on)}}
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/player/shuffle", query: q, idempotent: true}, nil)
	return err
}

// Repeat sets the repeat mode: "off", "track" or "context".
func (c *Client) Repeat(ctx context.Context, state string) error {
	q := url.Values{"state": {state}}
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/player/repeat", query: q, idempotent: true}, nil)
	return err
}

// AddToQueue appends uri to the playback queue.
func (c *Client) AddToQueue(ctx context.Context, uri string) error {
	q := url.Values{"uri": {uri}}
	_, err := c.do(ctx, call{method: http.MethodPost, path: "/me/player/queue", query: q}, nil)
	return err
}

// PlayerState returns the playback state, or nil when nothing is playing
// on any device.
func (c *Client) PlayerState(ctx context.Context) (*PlayerState, error) {
	return c.getState(ctx, "/me/player")
}

// CurrentTrack returns what is playing right now, or nil.
func (c *Client) CurrentTrack(ctx context.Context) (*PlayerState, error) {
	return c.getState(ctx, "/me/player/currently-playing")
}

func (c *Client) getState(ctx context.Context, path string) (*PlayerState, error) {
	var st PlayerState
	status, err := c.do(ctx, call{method: http.MethodGet, path: path, idempotent: true}, &st)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &st, nil
}

// Queue returns the user's playback queue.
func (c *Client) Queue(ctx context.Context) (*Queue, error) {
	var q Queue
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/me/player/queue", idempotent: true}, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
