// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"presensi_backend/internals/configs"
	headcountService "presensi_backend/internals/features/attendance/headcount/service"
	recordService "presensi_backend/internals/features/attendance/records/service"
	studentService "presensi_backend/internals/features/attendance/students/service"
	helper "presensi_backend/internals/helpers"
	"presensi_backend/internals/helpers/dbtime"
	"presensi_backend/internals/metrics"
	"presensi_backend/internals/middlewares"
	routeDetails "presensi_backend/internals/route/details"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

var startTime time.Time

// NewApp merakit fiber app lengkap (middleware + route). Dipakai main, presensictl, dan test.
func NewApp(cfg configs.App, db *gorm.DB, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.TrustedProxies, // sesuaikan dengan CIDR load balancer
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db, cfg, reg)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.App, reg *prometheus.Registry) {
	startTime = time.Now()

	m := metrics.NewAttendance(reg)

	students := studentService.New(db, cfg.StoreTimeout)
	svc := routeDetails.Services{
		Students: students,
		Attendance: recordService.New(db, students, recordService.Options{
			Clock:   dbtime.NewClock(cfg.Location),
			Timeout: cfg.StoreTimeout,
			Metrics: m,
		}),
		Headcount: headcountService.New(db, cfg.StoreTimeout, m),
	}

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db, reg)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(app.Group("/api"), svc)
}
