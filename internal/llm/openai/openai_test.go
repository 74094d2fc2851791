package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/turntable/internal/config"
	"github.com/nadzzz/turntable/internal/llm"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
		assert.Equal(t, 512, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "be brief", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "pause the music", req.Messages[1].Content)

		fmt.Fprint(w, `{"choices":[{"message":{"content":"Pausing. {\"function\":\"pausePlayback\",\"args\":{}}"}}]}`)
	}))
	defer srv.Close()

	g := New(config.OpenAIConfig{
		APIKey:      "gsk-test",
		BaseURL:     srv.URL + "/v1/",
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.7,
		MaxTokens:   512,
	}, 5*time.Second)

	out, err := g.Generate(context.Background(), llm.Prompt{Instructions: "be brief", Message: "pause the music"})
	require.NoError(t, err)
	assert.Equal(t, `Pausing. {"function":"pausePlayback","args":{}}`, out)
	assert.Equal(t, "openai", g.Name())
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
		isEmpty bool
	}{
		{name: "upstream failure", status: http.StatusInternalServerError, body: "boom", wantErr: "status 500"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, isEmpty: true},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"  "}}]}`, isEmpty: true},
		{name: "garbage", status: http.StatusOK, body: `not json`, wantErr: "decoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			g := New(config.OpenAIConfig{BaseURL: srv.URL, Model: "m"}, time.Second)
			_, err := g.Generate(context.Background(), llm.Prompt{Message: "hi"})
			require.Error(t, err)
			if tt.isEmpty {
				assert.ErrorIs(t, err, llm.ErrEmptyResponse)
			} else {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
