package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nadzzz/turntable/internal/action"
	"github.com/nadzzz/turntable/internal/extract"
	"github.com/nadzzz/turntable/internal/spotify"
)

func track(uri, name, artist string) spotify.Track {
	return spotify.Track{URI: uri, Name: name, Artists: []spotify.Artist{{Name: artist}}}
}

func results(outcomes []Outcome) []bool {
	out := make([]bool, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Result.Succeeded
	}
	return out
}

func TestEveryKindHasHandler(t *testing.T) {
	d := New(NewMockGateway(gomock.NewController(t)))
	assert.Empty(t, d.missingHandlers())
	assert.Len(t, d.table, len(action.Kinds()))
}

func TestExecuteSimpleActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().Pause(gomock.Any()).Return(nil),
		gw.EXPECT().Play(gomock.Any(), "").Return(nil),
		gw.EXPECT().Seek(gomock.Any(), 30000).Return(nil),
		gw.EXPECT().SetVolume(gomock.Any(), 40).Return(nil),
		gw.EXPECT().Shuffle(gomock.Any(), true).Return(nil),
		gw.EXPECT().Repeat(gomock.Any(), "track").Return(nil),
		gw.EXPECT().Next(gomock.Any()).Return(nil),
		gw.EXPECT().Previous(gomock.Any()).Return(nil),
		gw.EXPECT().Play(gomock.Any(), "spotify:track:1").Return(nil),
		gw.EXPECT().AddToQueue(gomock.Any(), "spotify:track:2").Return(nil),
	)

	outcomes := New(gw).Execute(ctx, []extract.Request{
		{Kind: "pausePlayback"},
		{Kind: "resumePlayback", Args: map[string]any{}},
		{Kind: "seek", Args: map[string]any{"position_ms": 30000.0}},
		{Kind: "setVolume", Args: map[string]any{"volume_percent": float64(40)}},
		{Kind: "shuffle", Args: map[string]any{"state": true}},
		{Kind: "repeat", Args: map[string]any{"state": "track"}},
		{Kind: "skipToNext"},
		{Kind: "skipToPrevious"},
		{Kind: "playTrack", Args: map[string]any{"uri": "spotify:track:1"}},
		{Kind: "addToQueue", Args: map[string]any{"uri": "spotify:track:2"}},
	})

	require.Len(t, outcomes, 10)
	for i, o := range outcomes {
		assert.True(t, o.Result.Succeeded, "action %d (%s): %s", i, o.Result.Action, o.Result.Error)
		assert.NotNil(t, o.Action)
		assert.NotNil(t, o.Result.Args)
	}
}

func TestInvalidActionDoesNotAbortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().Pause(gomock.Any()).Return(nil),
		gw.EXPECT().Next(gomock.Any()).Return(nil),
	)

	outcomes := New(gw).Execute(context.Background(), []extract.Request{
		{Kind: "pausePlayback"},
		{Kind: "dance", Args: map[string]any{"style": "salsa"}},
		{Kind: "skipToNext"},
	})

	require.Len(t, outcomes, 3)
	assert.Equal(t, []bool{true, false, true}, results(outcomes))
	assert.Nil(t, outcomes[1].Action)
	assert.Equal(t, "dance", outcomes[1].Result.Action)
	assert.Equal(t, "dance: unknown action", outcomes[1].Result.Error)
}

func TestSchemaFailuresNeverReachGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl) // no expectations: any call fails the test

	outcomes := New(gw).Execute(context.Background(), []extract.Request{
		{Kind: "seek", Args: map[string]any{"position_ms": -5.0}},
		{Kind: "setVolume", Args: map[string]any{"volume_percent": 150.0}},
		{Kind: "playTrack", Args: map[string]any{}},
		{Kind: "shuffle", Args: map[string]any{"state": "yes"}},
	})

	require.Len(t, outcomes, 4)
	assert.Equal(t, []bool{false, false, false, false}, results(outcomes))
	assert.Contains(t, outcomes[0].Result.Error, "position_ms")
	assert.Contains(t, outcomes[1].Result.Error, "volume_percent")
}

func TestGatewayFailureIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().Pause(gomock.Any()).Return(&spotify.APIError{StatusCode: 404, Reason: "NO_ACTIVE_DEVICE", Message: "No active device"}),
		gw.EXPECT().SetVolume(gomock.Any(), 10).Return(errors.New("connection reset")),
		gw.EXPECT().Next(gomock.Any()).Return(nil),
	)

	outcomes := New(gw).Execute(context.Background(), []extract.Request{
		{Kind: "pausePlayback"},
		{Kind: "setVolume", Args: map[string]any{"volume_percent": 10.0}},
		{Kind: "skipToNext"},
	})

	assert.Equal(t, []bool{false, false, true}, results(outcomes))
	assert.Equal(t, msgNoDevice, outcomes[0].Result.Error)
	assert.Equal(t, "connection reset", outcomes[1].Result.Error)
	assert.False(t, outcomes[0].Result.Reauthenticate)
}

func TestExpiredCredentialAsksForReauthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gw.EXPECT().Pause(gomock.Any()).Return(&spotify.APIError{StatusCode: 401, Message: "The access token expired"})

	outcomes := New(gw).Execute(context.Background(), []extract.Request{{Kind: "pausePlayback"}})

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Result.Succeeded)
	assert.True(t, outcomes[0].Result.Reauthenticate)
	assert.Equal(t, msgSessionExpired, outcomes[0].Result.Error)
}

func TestPanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gw.EXPECT().Pause(gomock.Any()).DoAndReturn(func(context.Context) error { panic("boom") })
	gw.EXPECT().Next(gomock.Any()).Return(nil)

	outcomes := New(gw).Execute(context.Background(), []extract.Request{
		{Kind: "pausePlayback"},
		{Kind: "skipToNext"},
	})

	assert.Equal(t, []bool{false, true}, results(outcomes))
	assert.Contains(t, outcomes[0].Result.Error, "boom")
}

func TestSearchAndPlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().SearchTracks(gomock.Any(), "bohemian rhapsody", 1).
			Return([]spotify.Track{track("spotify:track:bo", "Bohemian Rhapsody", "Queen")}, nil),
		gw.EXPECT().Play(gomock.Any(), "spotify:track:bo").Return(nil),
	)

	outcomes := New(gw).Execute(context.Background(), []extract.Request{
		{Kind: "searchTracksAndPlay", Args: map[string]any{"query": "bohemian rhapsody"}},
	})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Result.Succeeded)
	assert.Equal(t, "playing Bohemian Rhapsody by Queen", outcomes[0].Result.Detail)
}

func TestSearchAndPlayNoResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gw.EXPECT().SearchTracks(gomock.Any(), "nobody-band-xyz", 1).Return(nil, nil)

	d := New(gw)
	_, err := d.Run(context.Background(), action.SearchTracksAndPlay{Query: "nobody-band-xyz"})
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestAddToQueueByQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().SearchTracks(gomock.Any(), "daft punk", 1).
			Return([]spotify.Track{track("spotify:track:dp", "One More Time", "Daft Punk")}, nil),
		gw.EXPECT().AddToQueue(gomock.Any(), "spotify:track:dp").Return(nil),
	)

	detail, err := New(gw).Run(context.Background(), action.AddToQueue{Query: "daft punk"})
	require.NoError(t, err)
	assert.Equal(t, "queued One More Time by Daft Punk", detail)
}

func TestCreatePlaylistAccumulatesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().CreatePlaylist(gomock.Any(), "Mix", playlistNote).Return(&spotify.Playlist{ID: "pl1"}, nil),
		gw.EXPECT().SearchTracks(gomock.Any(), "a", 2).
			Return([]spotify.Track{{URI: "a1"}}, nil),
		gw.EXPECT().SearchTracks(gomock.Any(), "b", 3).
			Return([]spotify.Track{{URI: "b1"}, {URI: "b2"}, {URI: "b3"}}, nil),
		gw.EXPECT().AddTracksToPlaylist(gomock.Any(), "pl1", []string{"a1", "b1", "b2", "b3"}).Return(nil),
	)

	outcomes := New(gw).Execute(context.Background(), []extract.Request{{
		Kind: "createPlaylist",
		Args: map[string]any{
			"name": "Mix",
			"queries": []any{
				map[string]any{"query": "a", "limit": 2.0},
				map[string]any{"query": "b", "limit": 3.0},
			},
		},
	}})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Result.Succeeded, outcomes[0].Result.Error)
	assert.Equal(t, `created playlist "Mix" with 4 tracks`, outcomes[0].Result.Detail)
}

func TestCreatePlaylistTrimsOversizedSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().CreatePlaylist(gomock.Any(), "Short", gomock.Any()).Return(&spotify.Playlist{ID: "pl2"}, nil),
		gw.EXPECT().SearchTracks(gomock.Any(), "x", 1).
			Return([]spotify.Track{{URI: "x1"}, {URI: "x2"}}, nil),
		gw.EXPECT().AddTracksToPlaylist(gomock.Any(), "pl2", []string{"x1"}).Return(nil),
	)

	_, err := New(gw).Run(context.Background(), action.CreatePlaylist{
		Name:    "Short",
		Queries: []action.QueryGroup{{Query: "x", Limit: 1}},
	})
	require.NoError(t, err)
}

func TestCreatePlaylistCreationFailureSkipsSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gw.EXPECT().CreatePlaylist(gomock.Any(), "Mix", gomock.Any()).Return(nil, errors.New("quota"))

	outcomes := New(gw).Execute(context.Background(), []extract.Request{{
		Kind: "createPlaylist",
		Args: map[string]any{"name": "Mix", "query": "a"},
	}})

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Result.Succeeded)
	assert.Contains(t, outcomes[0].Result.Error, "quota")
}

func TestCreatePlaylistZeroTracksFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().CreatePlaylist(gomock.Any(), "Empty", gomock.Any()).Return(&spotify.Playlist{ID: "pl3"}, nil),
		gw.EXPECT().SearchTracks(gomock.Any(), "zzz", action.DefaultQueryLimit).Return(nil, nil),
	)

	_, err := New(gw).Run(context.Background(), action.CreatePlaylist{
		Name:    "Empty",
		Queries: []action.QueryGroup{{Query: "zzz", Limit: action.DefaultQueryLimit}},
	})
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestCreatePlaylistSkipsFailedGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().CreatePlaylist(gomock.Any(), "Mix", gomock.Any()).Return(&spotify.Playlist{ID: "pl4"}, nil),
		gw.EXPECT().SearchTracks(gomock.Any(), "a", 5).Return(nil, &spotify.APIError{StatusCode: 502}),
		gw.EXPECT().SearchTracks(gomock.Any(), "b", 5).Return([]spotify.Track{{URI: "b1"}}, nil),
		gw.EXPECT().AddTracksToPlaylist(gomock.Any(), "pl4", []string{"b1"}).Return(nil),
	)

	_, err := New(gw).Run(context.Background(), action.CreatePlaylist{
		Name:    "Mix",
		Queries: []action.QueryGroup{{Query: "a", Limit: 5}, {Query: "b", Limit: 5}},
	})
	require.NoError(t, err)
}

func TestCreatePlaylistStopsOnExpiredCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)

	gomock.InOrder(
		gw.EXPECT().CreatePlaylist(gomock.Any(), "Mix", gomock.Any()).Return(&spotify.Playlist{ID: "pl5"}, nil),
		gw.EXPECT().SearchTracks(gomock.Any(), "a", 5).Return(nil, &spotify.APIError{StatusCode: 401}),
	)

	_, err := New(gw).Run(context.Background(), action.CreatePlaylist{
		Name:    "Mix",
		Queries: []action.QueryGroup{{Query: "a", Limit: 5}, {Query: "b", Limit: 5}},
	})
	assert.ErrorIs(t, err, spotify.ErrUnauthorized)
}
