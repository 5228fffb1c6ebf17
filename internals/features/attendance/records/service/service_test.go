package service

import (
	"context"
	"testing"
	"time"

	"presensi_backend/internals/databases/dbtest"
	"presensi_backend/internals/features/attendance/records/dto"
	"presensi_backend/internals/features/attendance/records/model"
	studentDTO "presensi_backend/internals/features/attendance/students/dto"
	studentService "presensi_backend/internals/features/attendance/students/service"
	"presensi_backend/internals/helpers/dbtime"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	svc *Service
	now time.Time
}

// newFixture: roster R1 (AA:..:01, seksi A) & R2 (AA:..:02, seksi B), jam 2024-01-05 08:15 UTC.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	roster := studentService.New(db, 0)

	for _, s := range []studentDTO.CreateStudentRequest{
		{RegistrationNumber: "R2", Name: "Sari", Section: "B", DeviceID: "AA:BB:CC:DD:EE:02"},
		{RegistrationNumber: "R1", Name: "Adi", Section: "A", DeviceID: "AA:BB:CC:DD:EE:01"},
	} {
		_, err := roster.Create(context.Background(), s)
		require.NoError(t, err)
	}

	f := &fixture{db: db, now: time.Date(2024, 1, 5, 8, 15, 0, 0, time.UTC)}
	f.svc = New(db, roster, Options{
		Clock: dbtime.Clock{Loc: time.UTC, Now: func() time.Time { return f.now }},
	})
	return f
}

func (f *fixture) records(t *testing.T) []model.AttendanceRecordModel {
	t.Helper()
	var rows []model.AttendanceRecordModel
	require.NoError(t, f.db.Order("attendance_record_reg_no, attendance_record_date").Find(&rows).Error)
	return rows
}

func entry(reg, date, tm, status string) dto.ReconcileEntry {
	return dto.ReconcileEntry{RegistrationNumber: reg, Date: date, Time: tm, Status: status}
}
