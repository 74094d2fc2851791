// Package llm defines the boundary to the language model.
//
// A Generator turns fixed instructions plus one user message into raw text.
// Turntable ships with three backends: OpenAI-compatible chat completions
// (Groq, OpenAI, OpenRouter), Local (Ollama or any OpenAI-compatible
// self-hosted server) and Gemini.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the backend answered without any text.
var ErrEmptyResponse = errors.New("empty response from model")

// Prompt is one model request. The model sees no earlier turns.
type Prompt struct {
	// Instructions is the system prompt.
	Instructions string

	// Message is the user's chat text.
	Message string
}

// Generator produces free-form text for a prompt.
type Generator interface {
	// Name returns the backend identifier (e.g., "openai", "local").
	Name() string

	// Generate performs exactly one model call.
	Generate(ctx context.Context, p Prompt) (string, error)
}
