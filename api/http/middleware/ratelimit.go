package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/artem13815/resume-parser/api/http/presenter"
)

// RateLimit returns a token-bucket limiter shared by every request passing
// through it. A non-positive limit disables limiting.
func RateLimit(limit float64, burst int) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Limit(limit), burst)
	return func(c *fiber.Ctx) error {
		if !lim.Allow() {
			c.Set(fiber.HeaderRetryAfter, "1")
			return presenter.Error(c, fiber.StatusTooManyRequests, "Too many requests. Please retry later.")
		}
		return c.Next()
	}
}
