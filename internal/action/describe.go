package action

import (
	"fmt"
	"strings"
)

// Describe returns a short phrase for a, used to build a reply when the
// model asked for actions without saying anything itself.
func Describe(a Action) string {
	switch v := a.(type) {
	case PlayTrack:
		return "play that track"
	case PausePlayback:
		return "pause playback"
	case ResumePlayback:
		return "resume playback"
	case SkipToNext:
		return "skip to the next track"
	case SkipToPrevious:
		return "go back to the previous track"
	case SearchTracksAndPlay:
		return fmt.Sprintf("play %q", v.Query)
	case CreatePlaylist:
		return fmt.Sprintf("create a playlist called %q", v.Name)
	case Seek:
		return fmt.Sprintf("jump to %s", formatPosition(v.PositionMS))
	case SetVolume:
		return fmt.Sprintf("set the volume to %d%%", v.VolumePercent)
	case Shuffle:
		if v.State {
			return "turn shuffle on"
		}
		return "turn shuffle off"
	case Repeat:
		return fmt.Sprintf("set repeat to %s", v.State)
	case AddToQueue:
		if v.Query != "" {
			return fmt.Sprintf("queue %q", v.Query)
		}
		return "add that track to the queue"
	}
	return string(a.Kind())
}

// Summarize joins descriptions into one sentence:
// "I'll pause playback and set the volume to 30% for you."
func Summarize(actions []Action) string {
	if len(actions) == 0 {
		return ""
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = Describe(a)
	}
	var joined string
	switch len(parts) {
	case 1:
		joined = parts[0]
	case 2:
		joined = parts[0] + " and " + parts[1]
	default:
		joined = strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
	return "I'll " + joined + " for you."
}

func formatPosition(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
