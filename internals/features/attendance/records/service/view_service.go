package service

import (
	"context"
	"sort"
	"strings"

	database "presensi_backend/internals/databases"
	"presensi_backend/internals/features/attendance/records/dto"
	"presensi_backend/internals/features/attendance/records/model"
	studentModel "presensi_backend/internals/features/attendance/students/model"
	"presensi_backend/internals/helpers/apperr"
	"presensi_backend/internals/helpers/dbtime"
)

// Hanya baris pada tanggal terbaru per siswa yang dibaca; sisanya diputuskan ReduceLatest.
const latestDatePerStudent = `attendance_record_date = (
	SELECT MAX(r2.attendance_record_date)
	FROM attendance_records r2
	WHERE r2.attendance_record_reg_no = attendance_records.attendance_record_reg_no
)`

// JoinedView: left join roster × presensi, satu entry per siswa, urut reg_no.
func (s *Service) JoinedView(ctx context.Context, section string) ([]dto.StudentAttendanceView, error) {
	students, err := s.Roster.ListOrdered(ctx, strings.TrimSpace(section))
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return []dto.StudentAttendanceView{}, nil
	}

	sctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	var records []model.AttendanceRecordModel
	if err := s.DB.WithContext(sctx).
		Model(&model.AttendanceRecordModel{}).
		Where(latestDatePerStudent).
		Order("attendance_record_reg_no ASC, attendance_record_date DESC, attendance_record_time DESC, attendance_record_id ASC").
		Find(&records).Error; err != nil {
		return nil, apperr.FromStore("attendance.joined_view", err)
	}

	return ReduceLatest(students, records), nil
}

// ReduceLatest memilih satu record per siswa: tanggal terbesar, lalu jam
// terbesar, lalu id terkecil. Hasil tidak bergantung pada urutan input.
// Record tanpa siswa di roster diabaikan; siswa tanpa record → LatestAttendance nil.
func ReduceLatest(students []studentModel.StudentModel, records []model.AttendanceRecordModel) []dto.StudentAttendanceView {
	best := make(map[string]model.AttendanceRecordModel, len(students))
	for _, r := range records {
		cur, ok := best[r.AttendanceRecordRegNo]
		if !ok || preferred(r, cur) {
			best[r.AttendanceRecordRegNo] = r
		}
	}

	ordered := make([]studentModel.StudentModel, len(students))
	copy(ordered, students)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StudentRegNo < ordered[j].StudentRegNo
	})

	out := make([]dto.StudentAttendanceView, 0, len(ordered))
	for _, st := range ordered {
		v := dto.StudentAttendanceView{
			RegistrationNumber: st.StudentRegNo,
			Name:               st.StudentName,
			Section:            st.StudentSection,
		}
		if r, ok := best[st.StudentRegNo]; ok {
			v.LatestAttendance = dto.FromRecordModel(r)
		}
		out = append(out, v)
	}
	return out
}

// preferred: apakah a lebih "terbaru" dari b.
func preferred(a, b model.AttendanceRecordModel) bool {
	if a.AttendanceRecordDate != b.AttendanceRecordDate {
		return a.AttendanceRecordDate > b.AttendanceRecordDate // ISO date: urutan leksikal = kronologis
	}
	if ta, tb := minutesOf(a.AttendanceRecordTime), minutesOf(b.AttendanceRecordTime); ta != tb {
		return ta > tb
	}
	return a.AttendanceRecordID.String() < b.AttendanceRecordID.String()
}

// minutesOf: jam yang tidak bisa dibaca dianggap paling awal.
func minutesOf(s string) int {
	t, err := dbtime.Parse(s)
	if err != nil {
		return -1
	}
	return t.Minutes()
}
