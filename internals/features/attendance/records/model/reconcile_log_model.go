package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReconcileLogModel menyimpan salinan batch reconcile yang sudah di-commit.
type ReconcileLogModel struct {
	ReconcileLogID           uuid.UUID      `gorm:"type:uuid;primaryKey;column:reconcile_log_id"          json:"reconcile_log_id"`
	ReconcileLogAppliedCount int            `gorm:"not null;column:reconcile_log_applied_count"           json:"reconcile_log_applied_count"`
	ReconcileLogDistinctKeys int            `gorm:"not null;column:reconcile_log_distinct_keys"           json:"reconcile_log_distinct_keys"`
	ReconcileLogEntries      datatypes.JSON `gorm:"not null;column:reconcile_log_entries"                 json:"reconcile_log_entries"`
	ReconcileLogCreatedAt    time.Time      `gorm:"column:reconcile_log_created_at;autoCreateTime;index"  json:"reconcile_log_created_at"`
}

func (ReconcileLogModel) TableName() string { return "attendance_reconcile_logs" }

func (m *ReconcileLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReconcileLogID == uuid.Nil {
		m.ReconcileLogID = uuid.New()
	}
	return nil
}
