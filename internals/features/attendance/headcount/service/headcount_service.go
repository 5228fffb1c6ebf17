package service

import (
	"context"
	"errors"
	"time"

	database "presensi_backend/internals/databases"
	"presensi_backend/internals/features/attendance/headcount/dto"
	"presensi_backend/internals/features/attendance/headcount/model"
	"presensi_backend/internals/helpers/apperr"
	"presensi_backend/internals/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service mengelola snapshot headcount tunggal (selalu id = 1).
type Service struct {
	DB      *gorm.DB
	Timeout time.Duration
	Metrics *metrics.Attendance
	Now     func() time.Time
}

func New(db *gorm.DB, timeout time.Duration, m *metrics.Attendance) *Service {
	return &Service{DB: db, Timeout: timeout, Metrics: m, Now: time.Now}
}

// Update menimpa snapshot; nilai lama dibuang, bukan diversikan.
func (s *Service) Update(ctx context.Context, req dto.UpdateHeadcountRequest) (*model.HeadcountSnapshotModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	m := model.HeadcountSnapshotModel{
		HeadcountID:         model.SingletonID,
		HeadcountCount:      *req.Count,
		HeadcountRecordedAt: s.Now(),
	}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "headcount_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"headcount_count", "headcount_recorded_at"}),
	}).Create(&m).Error
	if err != nil {
		return nil, apperr.FromStore("headcount.update", err)
	}

	s.Metrics.SetHeadcount(m.HeadcountCount)
	return &m, nil
}

// Latest: nil tanpa error kalau belum pernah ada snapshot.
func (s *Service) Latest(ctx context.Context) (*model.HeadcountSnapshotModel, error) {
	ctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	var m model.HeadcountSnapshotModel
	err := s.DB.WithContext(ctx).Where("headcount_id = ?", model.SingletonID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore("headcount.latest", err)
	}
	return &m, nil
}
