// Package action defines the closed set of playback actions the assistant can
// request, their typed arguments, and the validation that turns an untyped
// argument map produced by the model into one of those types.
//
// Every action kind is declared once in the registry below. The prompt
// vocabulary, the invalidation table and the dispatch table are all derived
// from it, so adding a kind means adding one registry entry and one handler.
package action

// Kind names an action as the model spells it.
type Kind string

const (
	KindPlayTrack           Kind = "playTrack"
	KindPausePlayback       Kind = "pausePlayback"
	KindResumePlayback      Kind = "resumePlayback"
	KindSkipToNext          Kind = "skipToNext"
	KindSkipToPrevious      Kind = "skipToPrevious"
	KindSearchTracksAndPlay Kind = "searchTracksAndPlay"
	KindCreatePlaylist      Kind = "createPlaylist"
	KindSeek                Kind = "seek"
	KindSetVolume           Kind = "setVolume"
	KindShuffle             Kind = "shuffle"
	KindRepeat              Kind = "repeat"
	KindAddToQueue          Kind = "addToQueue"
)

// Resource is a piece of client-visible state that an action can change.
// The UI refetches a resource when a turn reports it as invalidated.
type Resource string

const (
	ResourcePlayerState  Resource = "playerState"
	ResourceCurrentTrack Resource = "currentTrack"
	ResourceQueue        Resource = "queue"
	ResourcePlaylists    Resource = "playlists"
)

// Action is a validated, strongly-typed action request. The set of
// implementations is closed: only this package can add one.
type Action interface {
	Kind() Kind
	sealed()
}

// RepeatState is the repeat mode of the playback device.
type RepeatState string

const (
	RepeatOff     RepeatState = "off"
	RepeatTrack   RepeatState = "track"
	RepeatContext RepeatState = "context"
)

// QueryGroup is one search used to fill a new playlist.
type QueryGroup struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// PlayTrack starts playback of a specific track URI.
type PlayTrack struct {
	URI string
}

// PausePlayback pauses the active device.
type PausePlayback struct{}

// ResumePlayback resumes the current context on the active device.
type ResumePlayback struct{}

// SkipToNext skips to the next track in the queue.
type SkipToNext struct{}

// SkipToPrevious returns to the previous track.
type SkipToPrevious struct{}

// SearchTracksAndPlay searches for Query and plays the top hit.
type SearchTracksAndPlay struct {
	Query string
}

// CreatePlaylist creates a private playlist and fills it from one or more
// searches, in order.
type CreatePlaylist struct {
	Name    string
	Queries []QueryGroup
}

// Seek moves the playhead.
type Seek struct {
	PositionMS int
}

// SetVolume sets the device volume.
type SetVolume struct {
	VolumePercent int
}

// Shuffle toggles shuffle mode.
type Shuffle struct {
	State bool
}

// Repeat sets the repeat mode.
type Repeat struct {
	State RepeatState
}

// AddToQueue appends a track to the playback queue. Exactly one of URI and
// Query is set; a query is resolved to its first search hit.
type AddToQueue struct {
	URI   string
	Query string
}

func (PlayTrack) Kind() Kind           { return KindPlayTrack }
func (PausePlayback) Kind() Kind       { return KindPausePlayback }
func (ResumePlayback) Kind() Kind      { return KindResumePlayback }
func (SkipToNext) Kind() Kind          { return KindSkipToNext }
func (SkipToPrevious) Kind() Kind      { return KindSkipToPrevious }
func (SearchTracksAndPlay) Kind() Kind { return KindSearchTracksAndPlay }
func (CreatePlaylist) Kind() Kind      { return KindCreatePlaylist }
func (Seek) Kind() Kind                { return KindSeek }
func (SetVolume) Kind() Kind           { return KindSetVolume }
func (Shuffle) Kind() Kind             { return KindShuffle }
func (Repeat) Kind() Kind              { return KindRepeat }
func (AddToQueue) Kind() Kind          { return KindAddToQueue }

func (PlayTrack) sealed()           {}
func (PausePlayback) sealed()       {}
func (ResumePlayback) sealed()      {}
func (SkipToNext) sealed()          {}
func (SkipToPrevious) sealed()      {}
func (SearchTracksAndPlay) sealed() {}
func (CreatePlaylist) sealed()      {}
func (Seek) sealed()                {}
func (SetVolume) sealed()           {}
func (Shuffle) sealed()             {}
func (Repeat) sealed()              {}
func (AddToQueue) sealed()          {}
