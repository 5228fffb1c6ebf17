package service

import (
	"context"
	"encoding/json"
	"errors"

	database "presensi_backend/internals/databases"
	"presensi_backend/internals/features/attendance/records/dto"
	"presensi_backend/internals/features/attendance/records/model"
	"presensi_backend/internals/helpers/apperr"
	"presensi_backend/internals/helpers/dbtime"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const reconcileBatchSize = 500

type recordKey struct{ regNo, date string }

// Reconcile menerapkan batch hasil review manusia sebagai overwrite penuh per
// (reg_no, date). Entry dengan kunci sama: yang terakhir menang. Satu transaksi.
func (s *Service) Reconcile(ctx context.Context, entries []dto.ReconcileEntry) (*dto.ReconcileResult, error) {
	if len(entries) == 0 {
		s.Metrics.ObserveReconcile("invalid", 0)
		return nil, apperr.InvalidInput("entries wajib berupa array yang tidak kosong", nil)
	}

	normalized, err := s.normalizeEntries(entries)
	if err != nil {
		s.Metrics.ObserveReconcile("invalid", 0)
		return nil, err
	}
	rows := collapseByKey(normalized)

	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, apperr.InvalidInput("entries tidak bisa diserialisasi", nil)
	}

	sctx, cancel := database.WithStoreTimeout(ctx, s.Timeout)
	defer cancel()

	err = s.DB.WithContext(sctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(upsertOnKey()).CreateInBatches(&rows, reconcileBatchSize).Error; err != nil {
			return err
		}
		return tx.Create(&model.ReconcileLogModel{
			ReconcileLogAppliedCount: len(normalized),
			ReconcileLogDistinctKeys: len(rows),
			ReconcileLogEntries:      datatypes.JSON(payload),
		}).Error
	})
	if err != nil {
		err = apperr.FromStore("attendance.reconcile", err)
		s.Metrics.ObserveReconcile(outcomeOf(err), 0)
		return nil, err
	}

	s.Metrics.ObserveReconcile("applied", len(normalized))
	return &dto.ReconcileResult{
		AppliedCount: len(normalized),
		DistinctKeys: len(rows),
	}, nil
}

// normalizeEntries memvalidasi semua entry sebelum DB disentuh. Jam kosong
// diisi jam sekarang; jam lain diseragamkan ke "HH:MM".
func (s *Service) normalizeEntries(entries []dto.ReconcileEntry) ([]dto.ReconcileEntry, error) {
	out := make([]dto.ReconcileEntry, len(entries))
	fields := map[string][]string{}
	_, now := s.Clock.Stamp()

	for i, e := range entries {
		e.Normalize()
		if err := e.Validate(i); err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				for k, v := range ae.Fields {
					fields[k] = append(fields[k], v...)
				}
			}
			continue
		}
		if e.Time == "" {
			e.Time = now
		} else {
			e.Time, _ = dbtime.Normalize(e.Time) // sudah lolos attendance_time
		}
		out[i] = e
	}
	if len(fields) > 0 {
		return nil, apperr.InvalidInput("Sebagian entries tidak valid, tidak ada yang disimpan", fields)
	}
	return out, nil
}

// collapseByKey: satu baris per (reg_no, date), urutan kemunculan pertama,
// nilai dari entry terakhir.
func collapseByKey(entries []dto.ReconcileEntry) []model.AttendanceRecordModel {
	idx := make(map[recordKey]int, len(entries))
	rows := make([]model.AttendanceRecordModel, 0, len(entries))
	for _, e := range entries {
		k := recordKey{e.RegistrationNumber, e.Date}
		row := model.AttendanceRecordModel{
			AttendanceRecordRegNo:  e.RegistrationNumber,
			AttendanceRecordDate:   e.Date,
			AttendanceRecordTime:   e.Time,
			AttendanceRecordStatus: e.Status,
			AttendanceRecordSource: model.SourceReconcile,
		}
		if i, ok := idx[k]; ok {
			rows[i] = row
			continue
		}
		idx[k] = len(rows)
		rows = append(rows, row)
	}
	return rows
}
