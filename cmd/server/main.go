// @title         resume-parser API
// @version       1.0
// @description   Extracts text from PDF and DOCX resumes and turns it into a structured, scored candidate profile with an LLM agent.
// @BasePath      /
// @schemes       http
// @host          localhost:8000
package main

import (
	"context"
	"log/slog"
	"os"

	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/resume-parser/docs"

	// internal imports
	"github.com/artem13815/resume-parser/api/http"
	"github.com/artem13815/resume-parser/api/http/handlers"
	"github.com/artem13815/resume-parser/api/http/middleware"
	"github.com/artem13815/resume-parser/pkg/agent"
	"github.com/artem13815/resume-parser/pkg/config"
	"github.com/artem13815/resume-parser/pkg/health"
	"github.com/artem13815/resume-parser/pkg/health/checkers"
	"github.com/artem13815/resume-parser/pkg/resume"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.LLMAPIKey == "" {
		logger.Warn("no LLM api key configured: set GOOGLE_API_KEY or LLM_API_KEY; parse requests will fail")
	}

	parser, err := agent.FromConfig(context.Background(), cfg)
	if err != nil {
		logger.Error("init agent", "err", err)
		os.Exit(1)
	}

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewLLMChecker(cfg.LLMAPIKey, cfg.LLMModel))
	healthHandler := handlers.NewHealthHandler(readiness)

	parseSvc := resume.NewParseService(parser, cfg.AgentTimeout)
	resumeHandler := handlers.NewResumeHandler(parseSvc, cfg.MaxUploadBytes, logger)

	app := http.NewApp(cfg, os.Stdout)
	http.Register(app, healthHandler, resumeHandler, middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	logger.Info("HTTP server listening",
		"port", cfg.Port,
		"provider", cfg.LLMProvider,
		"agent", parser.Name(),
		"model", parser.ModelName(),
		"origins", cfg.AllowedOrigins(),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
