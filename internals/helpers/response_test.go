package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"presensi_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date string `json:"date" validate:"required,attendance_date"`
	Time string `json:"time" validate:"omitempty,attendance_time"`
}

func TestValidateStructPrefix(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Date: "2024-01-05", Time: "9:30"}, ""))

	err := ValidateStruct(sample{Date: "2024-13-01", Time: "25:00"}, "entries[3]")
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindInvalidInput, ae.Kind)
	assert.Equal(t, []string{"attendance_date"}, ae.Fields["entries[3].date"])
	assert.Equal(t, []string{"attendance_time"}, ae.Fields["entries[3].time"])
}

func TestAttendanceDateRule(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Date: "2024-02-29"}, ""))

	for _, d := range []string{"2023-02-29", "05-01-2024", "2024-1-5"} {
		err := ValidateStruct(sample{Date: d}, "")
		var ae *apperr.Error
		require.True(t, errors.As(err, &ae), d)
		assert.Equal(t, []string{"attendance_date"}, ae.Fields["date"], d)
	}
}

// serve menjalankan h lewat app.Test dan mengembalikan status, Retry-After, body.
func serve(t *testing.T, h fiber.Handler) (int, string, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, resp.Header.Get(fiber.HeaderRetryAfter), body
}

func TestFromServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
		retry  bool
	}{
		{"invalid with fields", apperr.InvalidInput("Validasi gagal", map[string][]string{"name": {"required"}}), 400, "VALIDATION_ERROR", false},
		{"invalid", apperr.InvalidInput("deviceId wajib diisi", nil), 400, "BAD_REQUEST", false},
		{"not found", apperr.NotFound("tidak ada"), 404, "NOT_FOUND", false},
		{"conflict", apperr.Conflict("dup", nil), 409, "CONFLICT", false},
		{"conflict with fields", &apperr.Error{Kind: apperr.KindConflict, Message: "dup", Fields: map[string][]string{"device_id": {"unique"}}}, 409, "CONFLICT", false},
		{"unavailable", apperr.Unavailable("down", nil), 500, "STORE_UNAVAILABLE", true},
		{"store failure", apperr.StoreFailure("ditolak", nil), 500, "INTERNAL_ERROR", false},
		{"raw", errors.New("pq: something"), 500, "INTERNAL_ERROR", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, retryAfter, body := serve(t, func(c *fiber.Ctx) error {
				return FromServiceError(c, tc.err)
			})
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.ErrorCode)
			assert.Equal(t, tc.retry, body.Retryable)
			assert.False(t, body.Success)
			if tc.retry {
				assert.Equal(t, "1", retryAfter)
			}
		})
	}
}

func TestFromFiberError(t *testing.T) {
	status, _, body := serve(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid"))
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Payload tidak valid", body.Message)
}
