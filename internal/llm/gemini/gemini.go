// Package gemini implements llm.Generator with the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nadzzz/turntable/internal/config"
	"github.com/nadzzz/turntable/internal/llm"
)

// Generator calls Gemini generateContent.
type Generator struct {
	client *genai.Client
	model  string
	genCfg *genai.GenerateContentConfig
}

// New creates a Gemini generator. baseURL overrides the API endpoint and is
// empty in production.
func New(ctx context.Context, cfg config.GeminiConfig, timeout time.Duration, baseURL string) (*Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Generator{
		client: client,
		model:  cfg.Model,
		genCfg: &genai.GenerateContentConfig{
			Temperature: genai.Ptr(cfg.Temperature),
		},
	}, nil
}

// Name returns the backend identifier.
func (g *Generator) Name() string { return "gemini" }

// Generate sends the message with the instructions as system instruction.
func (g *Generator) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	genCfg := *g.genCfg
	if p.Instructions != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(p.Instructions, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.Message), &genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}

	slog.Debug("gemini generation done", "model", g.model, "content_length", len(text))
	return text, nil
}
