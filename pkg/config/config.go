package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevOrigin is the local frontend dev server, always allowed by CORS.
const DevOrigin = "http://localhost:5173"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port string

	LLMProvider  string
	LLMAPIKey    string
	LLMBaseURL   string
	LLMModel     string
	AgentName    string
	AgentTimeout time.Duration

	FrontendURL string

	MaxUploadBytes int64
	BodyLimit      int
	RateLimit      float64
	RateBurst      int

	LogLevel slog.Level
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8000"),
		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		LLMAPIKey:      firstEnv("GOOGLE_API_KEY", "LLM_API_KEY"),
		LLMBaseURL:     firstEnv("BASE_URL", "base_url"),
		LLMModel:       getEnv("LLM_MODEL", "gemini-2.5-flash"),
		AgentName:      getEnv("AGENT_NAME", "Resume Parser Agent"),
		AgentTimeout:   time.Duration(getEnvInt("AGENT_TIMEOUT_SECONDS", 120)) * time.Second,
		FrontendURL:    strings.TrimSpace(os.Getenv("FRONTEND_URL")),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 5)) << 20,
		BodyLimit:      getEnvInt("BODY_LIMIT_MB", 16) << 20,
		RateLimit:      getEnvFloat("PARSE_RATE_LIMIT", 0),
		RateBurst:      getEnvInt("PARSE_RATE_BURST", 5),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
	}
	if int64(cfg.BodyLimit) <= cfg.MaxUploadBytes {
		// the transport must accept bodies past the upload ceiling so the handler can report it
		cfg.BodyLimit = int(cfg.MaxUploadBytes) + 1<<20
	}
	return cfg
}

// AllowedOrigins returns the CORS origin list: the configured frontend plus the dev server.
func (c Config) AllowedOrigins() []string {
	origins := make([]string, 0, 2)
	if c.FrontendURL != "" && c.FrontendURL != DevOrigin {
		origins = append(origins, c.FrontendURL)
	}
	return append(origins, DevOrigin)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
