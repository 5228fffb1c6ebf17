package route

import (
	attendanceController "presensi_backend/internals/features/attendance/records/controller"
	"presensi_backend/internals/features/attendance/records/service"

	"github.com/gofiber/fiber/v2"
)

/*
Attendance routes.
Mount contoh: AttendanceRoutes(app.Group("/api"), svc)
*/
func AttendanceRoutes(r fiber.Router, svc *service.Service) {
	ctl := attendanceController.NewAttendanceController(svc)

	g := r.Group("/attendance")
	g.Post("/device-signal", ctl.DeviceSignal) // POST /api/attendance/device-signal
	g.Post("/reconcile", ctl.Reconcile)        // POST /api/attendance/reconcile
	g.Get("/view", ctl.View)                   // GET  /api/attendance/view

	// alias lama dari UI
	g.Post("/mac", ctl.DeviceSignal)            // POST /api/attendance/mac
	r.Post("/mark-attendance", ctl.Reconcile)   // POST /api/mark-attendance
	r.Get("/students/attendance", ctl.View)     // GET  /api/students/attendance
}
