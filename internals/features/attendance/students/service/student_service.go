package service

import (
	"context"
	"errors"
	"strings"
	"time"

	database "presensi_backend/internals/databases"
	"presensi_backend/internals/features/attendance/students/dto"
	"presensi_backend/internals/features/attendance/students/model"
	helper "presensi_backend/internals/helpers"
	"presensi_backend/internals/helpers/apperr"

	"gorm.io/gorm"
)

// Service = Roster Store. Semua panggilan DB dibatasi Timeout.
type Service struct {
	DB      *gorm.DB
	Timeout time.Duration
}

func New(db *gorm.DB, timeout time.Duration) *Service {
	return &Service{DB: db, Timeout: timeout}
}

// Create mendaftarkan siswa baru. Validasi dijalankan sebelum menyentuh DB.
func (s *Service) Create(ctx context.Context, req dto.CreateStudentRequest) (*model.StudentModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cek duplikasi per kunci supaya pesannya jelas; unique index tetap penjaga terakhir
		if err := duplicateCheck(tx, m); err != nil {
			return err
		}

		if err := tx.Create(&m).Error; err != nil {
			if apperr.IsDuplicateKey(err) {
				return apperr.Conflict("registration_number atau device_id sudah terdaftar", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, apperr.FromStore("students.create", err)
	}
	return &m, nil
}

// duplicateCheck melaporkan semua kunci yang sudah dipakai: reg_no, device_id, atau keduanya.
func duplicateCheck(tx *gorm.DB, m model.StudentModel) error {
	fields := map[string][]string{}
	for _, k := range []struct{ field, col, val string }{
		{"registration_number", "student_reg_no", m.StudentRegNo},
		{"device_id", "student_device_id", m.StudentDeviceID},
	} {
		var n int64
		if err := tx.Model(&model.StudentModel{}).Where(k.col+" = ?", k.val).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			fields[k.field] = append(fields[k.field], "unique")
		}
	}

	var msg string
	switch {
	case len(fields) == 2:
		msg = "registration_number dan device_id sudah terdaftar"
	case fields["registration_number"] != nil:
		msg = "registration_number sudah terdaftar"
	case fields["device_id"] != nil:
		msg = "device_id sudah dipakai siswa lain"
	default:
		return nil
	}
	e := apperr.Conflict(msg, nil)
	e.Fields = fields
	return e
}

// List mengembalikan roster urut reg_no. paging.Enabled=false → semua baris.
func (s *Service) List(ctx context.Context, section string, paging helper.Paging) ([]model.StudentModel, int64, error) {
	ctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	section = strings.TrimSpace(section)
	base := func() *gorm.DB {
		q := s.DB.WithContext(ctx).Model(&model.StudentModel{})
		if section != "" {
			q = q.Where("student_section = ?", section)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, apperr.FromStore("students.count", err)
	}

	q := base().Order("student_reg_no ASC")
	if paging.Enabled {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}
	var rows []model.StudentModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, apperr.FromStore("students.list", err)
	}
	return rows, total, nil
}

// ListOrdered dipakai View Builder: seluruh roster (opsional per section) urut reg_no.
func (s *Service) ListOrdered(ctx context.Context, section string) ([]model.StudentModel, error) {
	rows, _, err := s.List(ctx, section, helper.Paging{})
	return rows, err
}

// FindByDeviceID: exact match pada device id yang sudah dinormalisasi.
func (s *Service) FindByDeviceID(ctx context.Context, deviceID string) (*model.StudentModel, error) {
	deviceID = helper.NormalizeDeviceID(deviceID)
	if deviceID == "" {
		return nil, apperr.InvalidInput("deviceId wajib diisi", nil)
	}

	ctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	var m model.StudentModel
	err := s.DB.WithContext(ctx).
		Where("student_device_id = ?", deviceID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Siswa dengan device tersebut tidak ditemukan")
	}
	if err != nil {
		return nil, apperr.FromStore("students.find_by_device", err)
	}
	return &m, nil
}
