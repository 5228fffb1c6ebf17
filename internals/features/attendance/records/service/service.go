package service

import (
	"context"
	"time"

	studentModel "presensi_backend/internals/features/attendance/students/model"
	"presensi_backend/internals/features/attendance/records/model"
	"presensi_backend/internals/helpers/dbtime"
	"presensi_backend/internals/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterReader adalah bagian Roster Store yang dibutuhkan ingestion & view.
type RosterReader interface {
	FindByDeviceID(ctx context.Context, deviceID string) (*studentModel.StudentModel, error)
	ListOrdered(ctx context.Context, section string) ([]studentModel.StudentModel, error)
}

type Options struct {
	Clock   dbtime.Clock
	Timeout time.Duration
	Metrics *metrics.Attendance
}

// Service = Attendance Store + Device Ingestion + Bulk Reconciler + View Builder.
type Service struct {
	DB      *gorm.DB
	Roster  RosterReader
	Clock   dbtime.Clock
	Timeout time.Duration
	Metrics *metrics.Attendance
}

func New(db *gorm.DB, roster RosterReader, opt Options) *Service {
	if opt.Clock.Now == nil {
		opt.Clock = dbtime.NewClock(opt.Clock.Loc)
	}
	return &Service{
		DB:      db,
		Roster:  roster,
		Clock:   opt.Clock,
		Timeout: opt.Timeout,
		Metrics: opt.Metrics,
	}
}

// upsertOnKey: INSERT .. ON CONFLICT (reg_no, date) DO UPDATE SET <cols> = excluded.<cols>.
// Inilah satu-satunya jalur tulis ke attendance_records.
func upsertOnKey() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: model.ColRegNo}, {Name: model.ColDate}},
		DoUpdates: clause.AssignmentColumns([]string{
			model.ColTime,
			model.ColStatus,
			model.ColSource,
			model.ColUpdAt,
		}),
	}
}
