// Package local implements llm.Generator using self-hosted models.
//
// It supports Ollama's /api/generate and any OpenAI-compatible chat endpoint
// (e.g., Ollama's /v1/chat/completions, vLLM, llama.cpp server).
package local

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nadzzz/turntable/internal/config"
	"github.com/nadzzz/turntable/internal/llm"
)

// Generator calls a local LLM endpoint.
type Generator struct {
	endpoint string
	model    string
	client   *http.Client
}

// New creates a new local generator from config.
func New(cfg config.LocalConfig, timeout time.Duration) *Generator {
	model := cfg.Model
	if model == "" {
		model = "llama3"
	}
	return &Generator{
		endpoint: cfg.Endpoint,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name returns the backend identifier.
func (g *Generator) Name() string { return "local" }

// Generate sends the prompt to the local endpoint. The request shape is
// chosen from the endpoint path.
func (g *Generator) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	var reqBody map[string]any
	if strings.HasSuffix(g.endpoint, "/api/generate") {
		reqBody = map[string]any{
			"model":  g.model,
			"system": p.Instructions,
			"prompt": p.Message,
			"stream": false,
		}
	} else {
		reqBody = map[string]any{
			"model": g.model,
			"messages": []map[string]string{
				{"role": "system", "content": p.Instructions},
				{"role": "user", "content": p.Message},
			},
			"stream": false,
		}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("local LLM request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("local LLM failed (status %d): %s", resp.StatusCode, respBody)
	}

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading LLM response: %w", err)
	}

	content := extractContent(respData)
	if strings.TrimSpace(content) == "" {
		return "", llm.ErrEmptyResponse
	}

	slog.Debug("local generation done", "model", g.model, "content_length", len(content))
	return content, nil
}

func extractContent(data []byte) string {
	// OpenAI-compatible format: {"choices": [{"message": {"content": "..."}}]}
	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &chatResp); err == nil && len(chatResp.Choices) > 0 {
		return chatResp.Choices[0].Message.Content
	}

	// Ollama format: {"response": "..."}
	var ollamaResp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &ollamaResp); err == nil && ollamaResp.Response != "" {
		return ollamaResp.Response
	}

	return string(data)
}
