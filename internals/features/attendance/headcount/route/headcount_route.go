package route

import (
	headcountController "presensi_backend/internals/features/attendance/headcount/controller"
	"presensi_backend/internals/features/attendance/headcount/service"

	"github.com/gofiber/fiber/v2"
)

func HeadcountRoutes(r fiber.Router, svc *service.Service) {
	ctl := headcountController.NewHeadcountController(svc)

	r.Get("/headcount", ctl.Get)     // GET  /api/headcount
	r.Post("/headcount", ctl.Update) // POST /api/headcount
}
