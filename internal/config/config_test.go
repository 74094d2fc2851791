package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HealthPort)
	assert.True(t, cfg.Transports.HTTP.Enabled)
	assert.Equal(t, 8080, cfg.Transports.HTTP.Port)
	assert.False(t, cfg.Transports.GRPC.Enabled)
	assert.Equal(t, "openai", cfg.LLM.Backend)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "https://api.spotify.com/v1", cfg.Spotify.BaseURL)
	assert.Equal(t, 3, cfg.Spotify.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Spotify.RetryInitial)
	assert.Equal(t, "log", cfg.Events.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turntable.yaml")
	yaml := `
llm:
  backend: local
  local:
    model: llama3.2:3b
spotify:
  client_id: ${TT_TEST_CLIENT_ID}
  max_retries: 1
logging:
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("TT_TEST_CLIENT_ID", "abc123")
	t.Setenv("TURNTABLE_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.LLM.Backend)
	assert.Equal(t, "llama3.2:3b", cfg.LLM.Local.Model)
	assert.Equal(t, "abc123", cfg.Spotify.ClientID)
	assert.Equal(t, 1, cfg.Spotify.MaxRetries)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TURNTABLE_LLM_BACKEND", "carrier-pigeon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestResolveEnvRef(t *testing.T) {
	t.Setenv("TT_SECRET", "s3cret")

	assert.Equal(t, "s3cret", resolveEnvRef("${TT_SECRET}"))
	assert.Equal(t, "${TT_UNSET_VAR}", resolveEnvRef("${TT_UNSET_VAR}"))
	assert.Equal(t, "plain", resolveEnvRef("plain"))
}
