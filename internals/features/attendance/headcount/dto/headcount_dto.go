package dto

import (
	"time"

	"presensi_backend/internals/features/attendance/headcount/model"
	helper "presensi_backend/internals/helpers"
)

// count pointer supaya "tidak dikirim" bisa dibedakan dari 0.
type UpdateHeadcountRequest struct {
	Count *int `json:"count" validate:"required,min=0"`
}

func (r UpdateHeadcountRequest) Validate() error {
	return helper.ValidateStruct(r, "")
}

type HeadcountResponse struct {
	Count      int        `json:"count"`
	RecordedAt *time.Time `json:"timestamp,omitempty"`
}

func FromHeadcountModel(m *model.HeadcountSnapshotModel) HeadcountResponse {
	if m == nil {
		return HeadcountResponse{Count: 0}
	}
	t := m.HeadcountRecordedAt
	return HeadcountResponse{Count: m.HeadcountCount, RecordedAt: &t}
}
