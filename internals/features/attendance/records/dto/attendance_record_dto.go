package dto

import (
	"fmt"
	"strings"

	"presensi_backend/internals/features/attendance/records/model"
	helper "presensi_backend/internals/helpers"
)

/* =========================================================
   DEVICE SIGNAL
   ========================================================= */

// DeviceSignalRequest: body POST /attendance/device-signal.
// "mac_address" & "device_id" adalah alias dari UI/alat lama.
type DeviceSignalRequest struct {
	DeviceID   string `json:"deviceId"`
	DeviceIDSn string `json:"device_id"`
	MacAddress string `json:"mac_address"`
}

func (r DeviceSignalRequest) Resolve() string {
	for _, v := range []string{r.DeviceID, r.DeviceIDSn, r.MacAddress} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

type PresenceResult struct {
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	Section            string `json:"section"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Status             string `json:"status"`
}

/* =========================================================
   RECONCILE
   ========================================================= */

type ReconcileEntry struct {
	RegistrationNumber string `json:"registration_number" validate:"required,max=64"`
	Date               string `json:"date"                validate:"required,attendance_date"`
	Time               string `json:"time"                validate:"omitempty,attendance_time"`
	Status             string `json:"status"              validate:"required,oneof=Present Absent"`

	// alias lama
	RegNo string `json:"reg_no,omitempty"`
}

// ReconcileRequest: "students" adalah nama field lama dari /mark-attendance.
type ReconcileRequest struct {
	Entries  []ReconcileEntry `json:"entries"`
	Students []ReconcileEntry `json:"students"`
}

func (r ReconcileRequest) Resolve() []ReconcileEntry {
	if len(r.Entries) > 0 {
		return r.Entries
	}
	return r.Students
}

// Normalize: gabung alias, trim, dan samakan kapitalisasi status.
func (e *ReconcileEntry) Normalize() {
	if strings.TrimSpace(e.RegistrationNumber) == "" {
		e.RegistrationNumber = e.RegNo
	}
	e.RegNo = ""
	e.RegistrationNumber = strings.TrimSpace(e.RegistrationNumber)
	e.Date = strings.TrimSpace(e.Date)
	e.Time = strings.TrimSpace(e.Time)
	switch st := strings.TrimSpace(e.Status); {
	case strings.EqualFold(st, model.StatusPresent):
		e.Status = model.StatusPresent
	case strings.EqualFold(st, model.StatusAbsent):
		e.Status = model.StatusAbsent
	default:
		e.Status = st
	}
}

// Validate entry ke-i; nama field di error diberi prefix "entries[i]".
func (e ReconcileEntry) Validate(i int) error {
	return helper.ValidateStruct(e, fmt.Sprintf("entries[%d]", i))
}

type ReconcileResult struct {
	AppliedCount int `json:"applied_count"`
	DistinctKeys int `json:"distinct_keys"`
}

/* =========================================================
   JOINED VIEW
   ========================================================= */

type LatestAttendance struct {
	RegistrationNumber string `json:"registration_number"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Status             string `json:"status"`
	Source             string `json:"source,omitempty"`
}

// StudentAttendanceView: latestAttendance null = belum ada catatan
// (UI menampilkannya sebagai Absent).
type StudentAttendanceView struct {
	RegistrationNumber string            `json:"registration_number"`
	Name               string            `json:"name"`
	Section            string            `json:"section"`
	LatestAttendance   *LatestAttendance `json:"latestAttendance"`
}

func FromRecordModel(m model.AttendanceRecordModel) *LatestAttendance {
	return &LatestAttendance{
		RegistrationNumber: m.AttendanceRecordRegNo,
		Date:               m.AttendanceRecordDate,
		Time:               m.AttendanceRecordTime,
		Status:             m.AttendanceRecordStatus,
		Source:             m.AttendanceRecordSource,
	}
}
