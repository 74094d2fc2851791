package action

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultQueryLimit is used when a playlist query omits "limit".
	DefaultQueryLimit = 10
	// MaxQueryLimit is the largest page the search endpoint returns.
	MaxQueryLimit = 50
)

type entry struct {
	kind      Kind
	usage     string
	resources []Resource
	parse     func(a args) (Action, error)
}

// registry is the single source of truth for the action vocabulary. Order is
// the order in which actions are presented to the model.
var registry = []entry{
	{
		kind:      KindPlayTrack,
		usage:     `playTrack({"uri": string}) - Play a specific track by Spotify URI`,
		resources: []Resource{ResourcePlayerState, ResourceCurrentTrack},
		parse: func(a args) (Action, error) {
			uri, err := a.requiredString("uri")
			if err != nil {
				return nil, err
			}
			return PlayTrack{URI: uri}, nil
		},
	},
	{
		kind:      KindPausePlayback,
		usage:     `pausePlayback() - Pause the current playback`,
		resources: []Resource{ResourcePlayerState},
		parse:     func(args) (Action, error) { return PausePlayback{}, nil },
	},
	{
		kind:      KindResumePlayback,
		usage:     `resumePlayback() - Resume playback`,
		resources: []Resource{ResourcePlayerState},
		parse:     func(args) (Action, error) { return ResumePlayback{}, nil },
	},
	{
		kind:      KindSkipToNext,
		usage:     `skipToNext() - Skip to the next track`,
		resources: []Resource{ResourcePlayerState, ResourceCurrentTrack, ResourceQueue},
		parse:     func(args) (Action, error) { return SkipToNext{}, nil },
	},
	{
		kind:      KindSkipToPrevious,
		usage:     `skipToPrevious() - Skip to the previous track`,
		resources: []Resource{ResourcePlayerState, ResourceCurrentTrack, ResourceQueue},
		parse:     func(args) (Action, error) { return SkipToPrevious{}, nil },
	},
	{
		kind:      KindSearchTracksAndPlay,
		usage:     `searchTracksAndPlay({"query": string}) - Search for tracks and play the first result`,
		resources: []Resource{ResourcePlayerState, ResourceCurrentTrack},
		parse: func(a args) (Action, error) {
			q, err := a.requiredString("query")
			if err != nil {
				return nil, err
			}
			return SearchTracksAndPlay{Query: q}, nil
		},
	},
	{
		kind:      KindCreatePlaylist,
		usage:     `createPlaylist({"name": string, "queries": [{"query": string, "limit": number}]}) - Create a playlist filled from one or more searches`,
		resources: []Resource{ResourcePlaylists},
		parse:     parseCreatePlaylist,
	},
	{
		kind:      KindSeek,
		usage:     `seek({"position_ms": number}) - Seek to a position in the current track`,
		resources: []Resource{ResourcePlayerState},
		parse: func(a args) (Action, error) {
			pos, err := a.requiredInt("position_ms", 0, math.MaxInt32)
			if err != nil {
				return nil, err
			}
			return Seek{PositionMS: pos}, nil
		},
	},
	{
		kind:      KindSetVolume,
		usage:     `setVolume({"volume_percent": number}) - Set the volume from 0 to 100`,
		resources: []Resource{ResourcePlayerState},
		parse: func(a args) (Action, error) {
			v, err := a.requiredInt("volume_percent", 0, 100)
			if err != nil {
				return nil, err
			}
			return SetVolume{VolumePercent: v}, nil
		},
	},
	{
		kind:      KindShuffle,
		usage:     `shuffle({"state": boolean}) - Turn shuffle on or off`,
		resources: []Resource{ResourcePlayerState, ResourceQueue},
		parse: func(a args) (Action, error) {
			s, err := a.requiredBool("state")
			if err != nil {
				return nil, err
			}
			return Shuffle{State: s}, nil
		},
	},
	{
		kind:      KindRepeat,
		usage:     `repeat({"state": "off" | "track" | "context"}) - Set the repeat mode`,
		resources: []Resource{ResourcePlayerState},
		parse: func(a args) (Action, error) {
			s, err := a.requiredString("state")
			if err != nil {
				return nil, err
			}
			switch st := RepeatState(s); st {
			case RepeatOff, RepeatTrack, RepeatContext:
				return Repeat{State: st}, nil
			default:
				return nil, a.fail("state", ErrOutOfRange, fmt.Sprintf("%q is not one of off, track, context", s))
			}
		},
	},
	{
		kind:      KindAddToQueue,
		usage:     `addToQueue({"uri": string} or {"query": string}) - Add a track to the queue`,
		resources: []Resource{ResourceQueue},
		parse: func(a args) (Action, error) {
			uri, hasURI, err := a.optionalString("uri")
			if err != nil {
				return nil, err
			}
			if hasURI {
				return AddToQueue{URI: uri}, nil
			}
			q, hasQuery, err := a.optionalString("query")
			if err != nil {
				return nil, err
			}
			if !hasQuery {
				return nil, a.fail("uri", ErrMissingArgument, "")
			}
			return AddToQueue{Query: q}, nil
		},
	},
}

var byKind = func() map[Kind]*entry {
	m := make(map[Kind]*entry, len(registry))
	for i := range registry {
		m[registry[i].kind] = &registry[i]
	}
	return m
}()

// Kinds returns every supported action kind in registry order.
func Kinds() []Kind {
	kinds := make([]Kind, len(registry))
	for i, e := range registry {
		kinds[i] = e.kind
	}
	return kinds
}

// Known reports whether name is a supported action kind.
func Known(name string) bool {
	_, ok := byKind[Kind(name)]
	return ok
}

// Usage returns the one-line signature shown to the model for kind.
func Usage(kind Kind) string {
	if e, ok := byKind[kind]; ok {
		return e.usage
	}
	return ""
}

// Resources returns the client resources a successful action of kind
// invalidates.
func Resources(kind Kind) []Resource {
	if e, ok := byKind[kind]; ok {
		return e.resources
	}
	return nil
}

// Parse validates args against the schema of kind and returns the typed
// action. The returned error is always a *SchemaError.
func Parse(kind string, raw map[string]any) (Action, error) {
	e, ok := byKind[Kind(kind)]
	if !ok {
		return nil, &SchemaError{Kind: kind, Code: ErrUnknownAction}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return e.parse(args{kind: kind, m: raw})
}

func parseCreatePlaylist(a args) (Action, error) {
	name, err := a.requiredString("name")
	if err != nil {
		return nil, err
	}

	var groups []QueryGroup
	if rawQueries, ok := a.m["queries"]; ok && rawQueries != nil {
		list, ok := rawQueries.([]any)
		if !ok {
			return nil, a.fail("queries", ErrWrongType, "expected an array")
		}
		if len(list) == 0 {
			return nil, a.fail("queries", ErrMissingArgument, "empty array")
		}
		for idx, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, a.fail(fmt.Sprintf("queries[%d]", idx), ErrWrongType, "expected an object")
			}
			g, err := parseQueryGroup(args{kind: a.kind, m: obj, prefix: fmt.Sprintf("queries[%d].", idx)})
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)
		}
	} else {
		g, err := parseQueryGroup(a)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return CreatePlaylist{Name: name, Queries: groups}, nil
}

func parseQueryGroup(a args) (QueryGroup, error) {
	q, err := a.requiredString("query")
	if err != nil {
		return QueryGroup{}, err
	}
	limit, ok, err := a.optionalInt("limit", 1, MaxQueryLimit)
	if err != nil {
		return QueryGroup{}, err
	}
	if !ok {
		limit = DefaultQueryLimit
	}
	return QueryGroup{Query: strings.TrimSpace(q), Limit: limit}, nil
}
