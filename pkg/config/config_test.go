package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "LLM_PROVIDER", "GOOGLE_API_KEY", "LLM_API_KEY", "BASE_URL", "base_url", "LLM_MODEL",
		"AGENT_NAME", "AGENT_TIMEOUT_SECONDS", "FRONTEND_URL", "MAX_UPLOAD_MB", "BODY_LIMIT_MB",
		"PARSE_RATE_LIMIT", "PARSE_RATE_BURST", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLMModel)
	assert.Equal(t, "Resume Parser Agent", cfg.AgentName)
	assert.Equal(t, 120*time.Second, cfg.AgentTimeout)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadBytes)
	assert.Greater(t, int64(cfg.BodyLimit), cfg.MaxUploadBytes)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{DevOrigin}, cfg.AllowedOrigins())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("LLM_API_KEY", "secret")
	t.Setenv("BASE_URL", "")
	t.Setenv("base_url", "https://llm.example.com/v1")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("AGENT_TIMEOUT_SECONDS", "0")
	t.Setenv("MAX_UPLOAD_MB", "20")
	t.Setenv("BODY_LIMIT_MB", "4")
	t.Setenv("PARSE_RATE_LIMIT", "2.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "secret", cfg.LLMAPIKey)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLMBaseURL)
	assert.Zero(t, cfg.AgentTimeout)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 21<<20, cfg.BodyLimit)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://app.example.com", DevOrigin}, cfg.AllowedOrigins())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("PARSE_RATE_LIMIT", "-1")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := Load()

	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
