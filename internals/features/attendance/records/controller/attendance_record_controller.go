package controller

import (
	"presensi_backend/internals/features/attendance/records/dto"
	"presensi_backend/internals/features/attendance/records/service"
	helper "presensi_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	Svc *service.Service
}

func NewAttendanceController(svc *service.Service) *AttendanceController {
	return &AttendanceController{Svc: svc}
}

/* ===================== DEVICE SIGNAL ===================== */
// POST /api/attendance/device-signal  {deviceId}
func (h *AttendanceController) DeviceSignal(c *fiber.Ctx) error {
	var req dto.DeviceSignalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	res, err := h.Svc.RecordPresence(c.UserContext(), req.Resolve())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Attendance recorded successfully", res)
}

/* ===================== RECONCILE ===================== */
// POST /api/attendance/reconcile  {entries:[...]}
func (h *AttendanceController) Reconcile(c *fiber.Ctx) error {
	var req dto.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "entries harus berupa array")
	}

	res, err := h.Svc.Reconcile(c.UserContext(), req.Resolve())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"message":       "Attendance records updated successfully",
		"applied_count": res.AppliedCount,
		"distinct_keys": res.DistinctKeys,
	})
}

/* ===================== VIEW ===================== */
// GET /api/attendance/view?section=
func (h *AttendanceController) View(c *fiber.Ctx) error {
	rows, err := h.Svc.JoinedView(c.UserContext(), c.Query("section"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
