package controller

import (
	"presensi_backend/internals/features/attendance/headcount/dto"
	"presensi_backend/internals/features/attendance/headcount/service"
	helper "presensi_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type HeadcountController struct {
	Svc *service.Service
}

func NewHeadcountController(svc *service.Service) *HeadcountController {
	return &HeadcountController{Svc: svc}
}

// POST /api/headcount  {count}
func (h *HeadcountController) Update(c *fiber.Ctx) error {
	var req dto.UpdateHeadcountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	m, err := h.Svc.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Headcount updated successfully.",
		"headcount": dto.FromHeadcountModel(m),
	})
}

// GET /api/headcount
func (h *HeadcountController) Get(c *fiber.Ctx) error {
	m, err := h.Svc.Latest(c.UserContext())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromHeadcountModel(m))
}
