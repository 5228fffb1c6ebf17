package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Path yang tidak ikut limiter global. Satu gateway scanner bisa mengirim
// sinyal untuk setiap device yang terdeteksi dari satu IP.
var unlimitedPaths = map[string]struct{}{
	"/metrics":                      {},
	"/health":                       {},
	"/api/attendance/device-signal": {},
	"/api/attendance/mac":           {},
}

func skipRateLimit(path string) bool {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	_, ok := unlimitedPaths[path]
	return ok
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		// sinyal device, /health & /metrics tidak ikut dibatasi
		Next: func(c *fiber.Ctx) bool {
			return skipRateLimit(c.Path())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":    false,
				"message":    "❌ Terlalu banyak permintaan. Silakan coba lagi nanti.",
				"error_code": "TOO_MANY_REQUESTS",
			})
		},
	})
}
