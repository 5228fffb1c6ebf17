package route

import (
	studentController "presensi_backend/internals/features/attendance/students/controller"
	"presensi_backend/internals/features/attendance/students/service"

	"github.com/gofiber/fiber/v2"
)

/*
Roster routes.
Mount contoh: StudentRoutes(app.Group("/api"), svc)
*/
func StudentRoutes(r fiber.Router, svc *service.Service) {
	ctl := studentController.NewStudentController(svc)

	students := r.Group("/students")
	students.Get("/", ctl.List)    // GET  /api/students
	students.Post("/", ctl.Create) // POST /api/students

	// alias lama dari UI
	r.Post("/add-student", ctl.Create) // POST /api/add-student
}
