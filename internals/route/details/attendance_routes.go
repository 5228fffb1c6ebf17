package details

import (
	headcountRoute "presensi_backend/internals/features/attendance/headcount/route"
	headcountService "presensi_backend/internals/features/attendance/headcount/service"
	recordRoute "presensi_backend/internals/features/attendance/records/route"
	recordService "presensi_backend/internals/features/attendance/records/service"
	studentRoute "presensi_backend/internals/features/attendance/students/route"
	studentService "presensi_backend/internals/features/attendance/students/service"

	"github.com/gofiber/fiber/v2"
)

// Services = semua service fitur presensi yang sudah dirakit.
type Services struct {
	Students   *studentService.Service
	Attendance *recordService.Service
	Headcount  *headcountService.Service
}

// AttendanceRoutes memasang roster, presensi, dan headcount di bawah /api.
func AttendanceRoutes(api fiber.Router, svc Services) {
	recordRoute.AttendanceRoutes(api, svc.Attendance)
	studentRoute.StudentRoutes(api, svc.Students)
	headcountRoute.HeadcountRoutes(api, svc.Headcount)
}
