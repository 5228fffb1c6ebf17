package controller

import (
	"presensi_backend/internals/features/attendance/students/dto"
	"presensi_backend/internals/features/attendance/students/service"
	helper "presensi_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	Svc *service.Service
}

func NewStudentController(svc *service.Service) *StudentController {
	return &StudentController{Svc: svc}
}

/* ===================== CREATE ===================== */
// POST /api/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	m, err := h.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Student added", dto.FromStudentModel(*m))
}

/* ===================== LIST ===================== */
// GET /api/students?section=&page=&per_page=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	rows, total, err := h.Svc.List(c.UserContext(), c.Query("section"), paging)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	body := fiber.Map{"students": dto.FromStudentModels(rows)}
	if paging.Enabled {
		body["pagination"] = helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows))
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
