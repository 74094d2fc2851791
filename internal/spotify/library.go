package spotify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// maxTracksPerAdd is the most URIs the API accepts in one append.
	maxTracksPerAdd = 100
	pageSize        = 50
	playlistPage    = 100
)

// SearchTracks returns up to limit tracks matching query, best match first.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > pageSize {
		limit = pageSize
	}
	q := url.Values{
		"q":     {query},
		"type":  {"track"},
		"limit": {strconv.Itoa(limit)},
	}
	var resp searchResponse
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/search", query: q, idempotent: true}, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks.Items, nil
}

// Me returns the signed-in user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/me", idempotent: true}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreatePlaylist creates a private playlist owned by the signed-in user.
func (c *Client) CreatePlaylist(ctx context.Context, name, description string) (*Playlist, error) {
	me, err := c.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving user: %w", err)
	}
	body := map[string]any{
		"name":        name,
		"description": description,
		"public":      false,
	}
	var pl Playlist
	path := "/users/" + url.PathEscape(me.ID) + "/playlists"
	if _, err := c.do(ctx, call{method: http.MethodPost, path: path, body: body}, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// AddTracksToPlaylist appends uris to the playlist in order, in chunks the
// API accepts. Appending is not idempotent, so a failed chunk is retried
// only after re-reading the playlist and dropping URIs that already landed.
func (c *Client) AddTracksToPlaylist(ctx context.Context, playlistID string, uris []string) error {
	path := "/playlists/" + url.PathEscape(playlistID) + "/tracks"
	for start := 0; start < len(uris); start += maxTracksPerAdd {
		end := min(start+maxTracksPerAdd, len(uris))
		if err := c.addChunk(ctx, playlistID, path, uris[start:end]); err != nil {
			return fmt.Errorf("adding tracks %d-%d: %w", start, end-1, err)
		}
	}
	return nil
}

func (c *Client) addChunk(ctx context.Context, playlistID, path string, chunk []string) error {
	pending := chunk
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff(attempt-1, lastErr)):
			}

			present, err := c.playlistURIs(ctx, playlistID)
			if err != nil {
				return fmt.Errorf("re-reading playlist after failed append: %w", err)
			}
			pending = without(pending, present)
			if len(pending) == 0 {
				return nil
			}
			slog.Debug("retrying playlist append", "playlist", playlistID, "attempt", attempt, "remaining", len(pending))
		}

		_, err := c.do(ctx, call{method: http.MethodPost, path: path, body: map[string]any{"uris": pending}}, nil)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) {
			return err
		}
	}
	return lastErr
}

// PlaylistTracks returns every item of a playlist.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	path := "/playlists/" + url.PathEscape(playlistID) + "/tracks"
	var items []PlaylistItem
	for offset := 0; ; {
		q := url.Values{
			"limit":  {strconv.Itoa(playlistPage)},
			"offset": {strconv.Itoa(offset)},
		}
		var page Paging[PlaylistItem]
		if _, err := c.do(ctx, call{method: http.MethodGet, path: path, query: q, idempotent: true}, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		offset += len(page.Items)
		if page.Next == nil || len(page.Items) == 0 {
			return items, nil
		}
	}
}

func (c *Client) playlistURIs(ctx context.Context, playlistID string) (map[string]bool, error) {
	items, err := c.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Track != nil {
			present[it.Track.URI] = true
		}
	}
	return present, nil
}

// without returns the URIs in uris not present in drop, keeping order.
func without(uris []string, drop map[string]bool) []string {
	out := make([]string, 0, len(uris))
	for _, u := range uris {
		if !drop[u] {
			out = append(out, u)
		}
	}
	return out
}

// Playlists returns the user's playlists.
func (c *Client) Playlists(ctx context.Context, limit int) ([]Playlist, error) {
	q := url.Values{"limit": {strconv.Itoa(clampPage(limit))}}
	var page Paging[Playlist]
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/me/playlists", query: q, idempotent: true}, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// TopTracks returns the user's most played tracks. timeRange is one of
// short_term, medium_term or long_term; empty means the API default.
func (c *Client) TopTracks(ctx context.Context, timeRange string, limit int) ([]Track, error) {
	var page Paging[Track]
	if err := c.top(ctx, "tracks", timeRange, limit, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// TopArtists returns the user's most played artists.
func (c *Client) TopArtists(ctx context.Context, timeRange string, limit int) ([]Artist, error) {
	var page Paging[Artist]
	if err := c.top(ctx, "artists", timeRange, limit, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) top(ctx context.Context, kind, timeRange string, limit int, out any) error {
	q := url.Values{"limit": {strconv.Itoa(clampPage(limit))}}
	if timeRange != "" {
		q.Set("time_range", timeRange)
	}
	_, err := c.do(ctx, call{method: http.MethodGet, path: "/me/top/" + kind, query: q, idempotent: true}, out)
	return err
}

// IsSaved reports whether the track is in the user's library.
func (c *Client) IsSaved(ctx context.Context, trackID string) (bool, error) {
	var saved []bool
	q := url.Values{"ids": {trackID}}
	if _, err := c.do(ctx, call{method: http.MethodGet, path: "/me/tracks/contains", query: q, idempotent: true}, &saved); err != nil {
		return false, err
	}
	return len(saved) > 0 && saved[0], nil
}

// SaveTrack adds the track to the user's library.
func (c *Client) SaveTrack(ctx context.Context, trackID string) error {
	q := url.Values{"ids": {trackID}}
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/me/tracks", query: q, idempotent: true}, nil)
	return err
}

// RemoveSavedTrack removes the track from the user's library.
func (c *Client) RemoveSavedTrack(ctx context.Context, trackID string) error {
	q := url.Values{"ids": {trackID}}
	_, err := c.do(ctx, call{method: http.MethodDelete, path: "/me/tracks", query: q, idempotent: true}, nil)
	return err
}

// ToggleSaved flips the liked state of a track and returns the new state.
func (c *Client) ToggleSaved(ctx context.Context, trackID string) (bool, error) {
	saved, err := c.IsSaved(ctx, trackID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, c.RemoveSavedTrack(ctx, trackID)
	}
	return true, c.SaveTrack(ctx, trackID)
}

func clampPage(limit int) int {
	if limit < 1 || limit > pageSize {
		return pageSize
	}
	return limit
}
