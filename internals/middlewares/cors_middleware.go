// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS; origin diambil dari CORS_ALLOW_ORIGINS.
func CorsMiddleware(origins []string) fiber.Handler {
	allow := strings.Join(origins, ", ")
	if allow == "" {
		allow = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins: allow,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	})
}
