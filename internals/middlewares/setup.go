package middlewares

import (
	"time"

	"presensi_backend/internals/configs"
	"presensi_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// SetupMiddlewares memasang middleware global dengan urutan tetap.
func SetupMiddlewares(app *fiber.App, cfg configs.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware(cfg.Location))
	app.Use(RequestContext(requestTimeout(cfg.StoreTimeout)))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 untuk GET view yang di-poll UI
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
}

// requestTimeout sedikit lebih longgar dari timeout store.
func requestTimeout(store time.Duration) time.Duration {
	if store <= 0 {
		store = 3 * time.Second
	}
	return store + 2*time.Second
}
