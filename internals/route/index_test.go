package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"presensi_backend/internals/configs"
	"presensi_backend/internals/databases/dbtest"
	recordModel "presensi_backend/internals/features/attendance/records/model"
	studentDTO "presensi_backend/internals/features/attendance/students/dto"
	studentService "presensi_backend/internals/features/attendance/students/service"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	app, _ := newTestAppWith(t, nil)
	return app
}

// newTestAppWith: tweak boleh mengubah config sebelum app dirakit.
func newTestAppWith(t *testing.T, tweak func(*configs.App)) (*fiber.App, *gorm.DB) {
	t.Helper()
	cfg := configs.App{
		DBDriver:     "sqlite",
		Location:     time.UTC,
		StoreTimeout: 3 * time.Second,
		RateLimitMax: 1000,
	}
	if tweak != nil {
		tweak(&cfg)
	}
	db := dbtest.Open(t)
	return NewApp(cfg, db, prometheus.NewRegistry()), db
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), string(raw))
	return m
}

func TestAttendanceFlow(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/students",
		`{"registration_number":"R1","name":"Adi","section":"A","device_id":"aa:bb:cc:dd:ee:01"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	// alias lama
	status, raw = do(t, app, http.MethodPost, "/api/add-student",
		`{"reg_no":"R2","name":"Sari","section":"B","mac_address":"aa:bb:cc:dd:ee:02"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = do(t, app, http.MethodPost, "/api/students",
		`{"registration_number":"R3","name":"Dup","section":"B","device_id":"AA-BB-CC-DD-EE-02"}`)
	assert.Equal(t, http.StatusConflict, status, string(raw))

	status, raw = do(t, app, http.MethodPost, "/api/attendance/device-signal", `{"deviceId":"AA:BB:CC:DD:EE:01"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	data := decode(t, raw)["data"].(map[string]any)
	assert.Equal(t, "R1", data["registration_number"])
	assert.Equal(t, "Present", data["status"])
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), data["date"])

	status, raw = do(t, app, http.MethodPost, "/api/attendance/mac", `{"mac_address":"AA:BB:CC:DD:EE:99"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, raw)["error_code"])

	status, raw = do(t, app, http.MethodPost, "/api/mark-attendance",
		`{"students":[{"reg_no":"R2","date":"2024-01-05","time":"09:00","status":"Absent"},{"reg_no":"R2","date":"2024-01-05","time":"10:00","status":"Present"}]}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	body := decode(t, raw)
	assert.EqualValues(t, 2, body["applied_count"])
	assert.EqualValues(t, 1, body["distinct_keys"])

	status, raw = do(t, app, http.MethodGet, "/api/attendance/view", "")
	require.Equal(t, http.StatusOK, status)
	var view []map[string]any
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view, 2)
	assert.Equal(t, "R1", view[0]["registration_number"])
	assert.Equal(t, "Present", view[0]["latestAttendance"].(map[string]any)["status"])
	assert.Equal(t, "10:00", view[1]["latestAttendance"].(map[string]any)["time"])

	status, raw = do(t, app, http.MethodGet, "/api/students/attendance?section=B", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Len(t, view, 1)

	status, raw = do(t, app, http.MethodGet, "/api/students?page=1&per_page=1", "")
	require.Equal(t, http.StatusOK, status)
	body = decode(t, raw)
	assert.Len(t, body["students"], 1)
	assert.EqualValues(t, 2, body["pagination"].(map[string]any)["total"])
}

func TestReconcileRejections(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodPost, "/api/attendance/reconcile", `{"entries":[]}`)
	assert.Equal(t, http.StatusBadRequest, status, string(raw))

	status, _ = do(t, app, http.MethodPost, "/api/attendance/reconcile", `{"entries":"bukan array"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = do(t, app, http.MethodPost, "/api/attendance/reconcile",
		`{"entries":[{"registration_number":"R1","date":"05-01-2024","status":"Present"}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	body := decode(t, raw)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	assert.Contains(t, body["errors"], "entries[0].date")

	status, _ = do(t, app, http.MethodPost, "/api/attendance/device-signal", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHeadcountEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/api/headcount", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, decode(t, raw)["count"])

	status, _ = do(t, app, http.MethodPost, "/api/headcount", `{"count":-3}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/api/headcount", `{"count":12}`)
	require.Equal(t, http.StatusOK, status)

	status, raw = do(t, app, http.MethodGet, "/api/headcount", "")
	require.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.EqualValues(t, 12, body["count"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	status, raw := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", decode(t, raw)["status"])

	do(t, app, http.MethodPost, "/api/attendance/device-signal", `{"deviceId":"nope"}`)

	status, raw = do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), `presensi_device_signals_total{outcome="not_found"} 1`)
}

func TestDeviceSignalsNotRateLimited(t *testing.T) {
	app, db := newTestAppWith(t, func(c *configs.App) { c.RateLimitMax = 5 })

	roster := studentService.New(db, 0)
	const n = 130
	for i := 0; i < n; i++ {
		_, err := roster.Create(context.Background(), studentDTO.CreateStudentRequest{
			RegistrationNumber: fmt.Sprintf("R%03d", i),
			Name:               fmt.Sprintf("Siswa %d", i),
			Section:            "A",
			DeviceID:           fmt.Sprintf("AA:BB:CC:DD:00:%02X", i),
		})
		require.NoError(t, err)
	}

	// satu gateway, satu IP, semua device yang terdeteksi
	for i := 0; i < n; i++ {
		path := "/api/attendance/device-signal"
		if i%2 == 1 {
			path = "/api/attendance/mac"
		}
		status, raw := do(t, app, http.MethodPost, path, fmt.Sprintf(`{"deviceId":"AA:BB:CC:DD:00:%02X"}`, i))
		require.Equal(t, http.StatusCreated, status, "signal %d: %s", i, raw)
	}

	var rows int64
	require.NoError(t, db.Model(&recordModel.AttendanceRecordModel{}).Count(&rows).Error)
	assert.Equal(t, int64(n), rows)

	// endpoint lain tetap dibatasi
	var last int
	for i := 0; i < 6; i++ {
		last, _ = do(t, app, http.MethodGet, "/api/headcount", "")
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestForwardedForIgnoredWithoutTrustedProxy(t *testing.T) {
	app, _ := newTestAppWith(t, func(c *configs.App) { c.RateLimitMax = 2 })

	var status int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/headcount", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i+1))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		status = resp.StatusCode
	}
	assert.Equal(t, http.StatusTooManyRequests, status)
}
