package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/artem13815/resume-parser/api/http/handlers"
	"github.com/artem13815/resume-parser/api/http/presenter"
	"github.com/artem13815/resume-parser/pkg/config"
)

// NewApp builds the Fiber app with the shared middleware stack. Framework
// errors are rendered in the same {"detail": ...} envelope as handler errors.
// accessLog may be nil to disable request logging.
func NewApp(cfg config.Config, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "resume-parser",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(cfg.MaxUploadBytes),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if accessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
			Output: accessLog,
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins(), ","),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))
	return app
}

func errorHandler(maxUpload int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code == fiber.StatusRequestEntityTooLarge {
			return presenter.Error(c, fiber.StatusBadRequest, handlers.TooLargeDetail(maxUpload))
		}
		return presenter.Error(c, code, err.Error())
	}
}

// Register wires all HTTP routes onto given Fiber app. parseLimiter guards
// the parse endpoint only.
func Register(app *fiber.App, health *handlers.HealthHandler, resume *handlers.ResumeHandler, parseLimiter fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/system-health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/parse-resume", parseLimiter, resume.Parse)
}
