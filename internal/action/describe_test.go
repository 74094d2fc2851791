package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "pause playback", Describe(PausePlayback{}))
	assert.Equal(t, "jump to 1:30", Describe(Seek{PositionMS: 90_000}))
	assert.Equal(t, `create a playlist called "Gym"`, Describe(CreatePlaylist{Name: "Gym"}))
	assert.Equal(t, "turn shuffle off", Describe(Shuffle{State: false}))
	assert.Equal(t, `queue "lofi"`, Describe(AddToQueue{Query: "lofi"}))
}

func TestSummarize(t *testing.T) {
	assert.Empty(t, Summarize(nil))
	assert.Equal(t, "I'll pause playback for you.", Summarize([]Action{PausePlayback{}}))
	assert.Equal(t, "I'll pause playback and set the volume to 30% for you.",
		Summarize([]Action{PausePlayback{}, SetVolume{VolumePercent: 30}}))
	assert.Equal(t, "I'll skip to the next track, turn shuffle on and set repeat to track for you.",
		Summarize([]Action{SkipToNext{}, Shuffle{State: true}, Repeat{State: RepeatTrack}}))
}
