package spotify

// Wire types for the subset of the Spotify Web API the assistant uses.
// Field names follow the API JSON exactly.

// Paging is an offset-paginated list.
type Paging[T any] struct {
	Href   string  `json:"href"`
	Items  []T     `json:"items"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Total  int     `json:"total"`
	Next   *string `json:"next"`
}

// Image is cover art.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// Artist is a (simplified or full) artist object.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	Genres     []string `json:"genres,omitempty"`
	Images     []Image  `json:"images,omitempty"`
	Popularity int      `json:"popularity,omitempty"`
}

// Album is a simplified album object.
type Album struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URI         string  `json:"uri"`
	Images      []Image `json:"images,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

// Track is a full track object.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	DurationMS int      `json:"duration_ms"`
	Popularity int      `json:"popularity,omitempty"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
}

// User is the public part of a user profile.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Playlist is a simplified playlist object.
type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URI         string  `json:"uri"`
	Description string  `json:"description"`
	Public      bool    `json:"public"`
	Images      []Image `json:"images,omitempty"`
	Owner       User    `json:"owner"`
	Tracks      struct {
		Total int `json:"total"`
	} `json:"tracks"`
}

// PlaylistItem is one entry of a playlist.
type PlaylistItem struct {
	AddedAt string `json:"added_at"`
	Track   *Track `json:"track"`
}

// Device is a Spotify Connect device.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent *int   `json:"volume_percent"`
}

// PlayerState is the playback state of the active device. The currently
// playing endpoint returns the same shape without Device.
type PlayerState struct {
	Device               *Device `json:"device,omitempty"`
	ShuffleState         bool    `json:"shuffle_state"`
	RepeatState          string  `json:"repeat_state"`
	ProgressMS           int     `json:"progress_ms"`
	IsPlaying            bool    `json:"is_playing"`
	Item                 *Track  `json:"item"`
	CurrentlyPlayingType string  `json:"currently_playing_type"`
}

// Queue is the user's playback queue.
type Queue struct {
	CurrentlyPlaying *Track  `json:"currently_playing"`
	Queue            []Track `json:"queue"`
}

type searchResponse struct {
	Tracks Paging[Track] `json:"tracks"`
}
