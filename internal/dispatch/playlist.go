package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nadzzz/turntable/internal/action"
	"github.com/nadzzz/turntable/internal/spotify"
)

// createPlaylist creates the playlist first, then fills it from each query
// group in order with one batched append. A group whose search fails is
// skipped. The playlist is kept even when filling it fails afterwards.
func (d *Dispatcher) createPlaylist(ctx context.Context, a action.Action) (string, error) {
	plan := a.(action.CreatePlaylist)

	pl, err := d.gw.CreatePlaylist(ctx, plan.Name, playlistNote)
	if err != nil {
		return "", fmt.Errorf("creating playlist %q: %w", plan.Name, err)
	}
	logger := slog.With("playlist", pl.ID, "name", plan.Name)

	var uris []string
	for _, g := range plan.Queries {
		tracks, err := d.gw.SearchTracks(ctx, g.Query, g.Limit)
		if err != nil {
			if errors.Is(err, spotify.ErrUnauthorized) {
				return "", fmt.Errorf("searching %q: %w", g.Query, err)
			}
			logger.Warn("skipping playlist query", "query", g.Query, "error", err)
			continue
		}
		if len(tracks) > g.Limit {
			tracks = tracks[:g.Limit]
		}
		for _, t := range tracks {
			uris = append(uris, t.URI)
		}
	}

	if len(uris) == 0 {
		return "", fmt.Errorf("%w for playlist %q", ErrNoTracks, plan.Name)
	}
	if err := d.gw.AddTracksToPlaylist(ctx, pl.ID, uris); err != nil {
		return "", fmt.Errorf("adding tracks to playlist %q: %w", plan.Name, err)
	}

	logger.Info("playlist created", "tracks", len(uris))
	return fmt.Sprintf("created playlist %q with %d tracks", plan.Name, len(uris)), nil
}
