package service

import (
	"context"

	database "presensi_backend/internals/databases"
	"presensi_backend/internals/features/attendance/records/dto"
	"presensi_backend/internals/features/attendance/records/model"
	helper "presensi_backend/internals/helpers"
	"presensi_backend/internals/helpers/apperr"
)

// RecordPresence memetakan device → siswa lalu upsert presensi hari ini sebagai Present.
// Sinyal hanya bisa menaikkan status ke Present, tidak pernah ke Absent.
func (s *Service) RecordPresence(ctx context.Context, deviceID string) (*dto.PresenceResult, error) {
	deviceID = helper.NormalizeDeviceID(deviceID)
	if deviceID == "" {
		s.Metrics.ObservePresence("invalid")
		return nil, apperr.InvalidInput("deviceId wajib diisi", nil)
	}

	st, err := s.Roster.FindByDeviceID(ctx, deviceID)
	if err != nil {
		s.Metrics.ObservePresence(outcomeOf(err))
		return nil, err
	}

	date, tm := s.Clock.Stamp()
	rec := model.AttendanceRecordModel{
		AttendanceRecordRegNo:  st.StudentRegNo,
		AttendanceRecordDate:   date,
		AttendanceRecordTime:   tm,
		AttendanceRecordStatus: model.StatusPresent,
		AttendanceRecordSource: model.SourceDevice,
	}

	sctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.DB.WithContext(sctx).Clauses(upsertOnKey()).Create(&rec).Error; err != nil {
		err = apperr.FromStore("attendance.record_presence", err)
		s.Metrics.ObservePresence(outcomeOf(err))
		return nil, err
	}

	s.Metrics.ObservePresence("recorded")
	return &dto.PresenceResult{
		RegistrationNumber: st.StudentRegNo,
		Name:               st.StudentName,
		Section:            st.StudentSection,
		Date:               date,
		Time:               tm,
		Status:             model.StatusPresent,
	}, nil
}

func outcomeOf(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput:
		return "invalid"
	case apperr.KindNotFound:
		return "not_found"
	case apperr.KindConflict:
		return "conflict"
	default:
		return "store_error"
	}
}
