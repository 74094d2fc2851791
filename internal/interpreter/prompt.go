package interpreter

import (
	"strings"

	"github.com/nadzzz/turntable/internal/action"
)

// Instructions builds the system prompt from the action registry. It is the
// same for every turn.
func Instructions() string {
	var sb strings.Builder
	sb.WriteString("You are a friendly and helpful music assistant for Spotify. ")
	sb.WriteString("You can chat about music and control playback through function calls.\n\n")

	sb.WriteString("Available functions:\n")
	for _, k := range action.Kinds() {
		sb.WriteString("- ")
		sb.WriteString(action.Usage(k))
		sb.WriteString("\n")
	}

	sb.WriteString("\nIMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Keep responses concise and engaging.\n")
	sb.WriteString("2. DO NOT include any thinking process or <think> tags.\n")
	sb.WriteString("3. When responding to playback commands:\n")
	sb.WriteString("   - Give a brief response.\n")
	sb.WriteString("   - Include exactly ONE function call in JSON format, unless you are building a playlist.\n")
	sb.WriteString("   - Format must be: \"Your response\" followed by the JSON.\n")
	sb.WriteString("   - JSON format: {\"function\": \"<name>\", \"args\": {...}}\n")
	sb.WriteString("4. For unclear commands, ask for clarification instead of calling a function.\n")
	sb.WriteString("5. If the user asks for a song, search for it and play it.\n")
	sb.WriteString("6. To build a playlist, call createPlaylist once with one query per artist, genre or mood.\n")
	sb.WriteString("\nExample: I'll pause that for you.\n{\"function\": \"pausePlayback\", \"args\": {}}\n")
	return sb.String()
}
