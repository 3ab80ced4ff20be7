// FILE: internal/pkg/serverutils/rate_limiter.go
package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter limits requests per client IP.
func RateLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(fiber.StatusTooManyRequests, message))
		},
	})
}

func LoginRateLimiter() fiber.Handler {
	return RateLimiter(5, time.Minute, "too many login attempts, try again later")
}

func ContactRateLimiter() fiber.Handler {
	return RateLimiter(3, 5*time.Minute, "too many messages, try again in a few minutes")
}
