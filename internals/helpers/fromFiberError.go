package helper

import (
	"errors"

	"presensi_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error hasil handler (biasanya *fiber.Error)
// menjadi response JSON konsisten via JsonError.
// Jika bukan *fiber.Error, fallback ke FromServiceError.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return FromServiceError(c, err)
}

// FromServiceError menerjemahkan *apperr.Error ke status + body JSON.
// Error lain tidak pernah dibocorkan apa adanya ke klien.
func FromServiceError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	switch ae.Kind {
	case apperr.KindInvalidInput:
		if len(ae.Fields) > 0 {
			return JsonFieldError(c, ae.Message, ae.Fields)
		}
		return JsonError(c, fiber.StatusBadRequest, ae.Message)
	case apperr.KindStoreUnavailable:
		if ae.Retryable() {
			return JsonRetryableError(c, ae.Message)
		}
		return JsonError(c, fiber.StatusInternalServerError, ae.Message)
	case apperr.KindConflict:
		if len(ae.Fields) > 0 {
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Success:   false,
				Message:   ae.Message,
				ErrorCode: "CONFLICT",
				Errors:    ae.Fields,
			})
		}
		return JsonError(c, fiber.StatusConflict, ae.Message)
	default:
		return JsonError(c, ae.Kind.HTTPStatus(), ae.Message)
	}
}
