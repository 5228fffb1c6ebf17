package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"

	SourceDevice    = "device"
	SourceReconcile = "reconcile"
)

// Kolom konflik untuk upsert: satu record per (reg_no, date).
const (
	ColRegNo  = "attendance_record_reg_no"
	ColDate   = "attendance_record_date"
	ColTime   = "attendance_record_time"
	ColStatus = "attendance_record_status"
	ColSource = "attendance_record_source"
	ColUpdAt  = "attendance_record_updated_at"
)

// AttendanceRecordModel: tidak ada FK ke students, baris yatim tetap boleh ada.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordRegNo string `gorm:"type:varchar(64);not null;uniqueIndex:uq_attendance_records_reg_no_date,priority:1;column:attendance_record_reg_no" json:"attendance_record_reg_no"`
	AttendanceRecordDate  string `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_records_reg_no_date,priority:2;column:attendance_record_date"   json:"attendance_record_date"`

	AttendanceRecordTime   string `gorm:"type:varchar(5);not null;column:attendance_record_time"                   json:"attendance_record_time"`
	AttendanceRecordStatus string `gorm:"type:varchar(10);not null;default:Absent;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordSource string `gorm:"type:varchar(16);not null;default:device;column:attendance_record_source" json:"attendance_record_source"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	if m.AttendanceRecordStatus == "" {
		m.AttendanceRecordStatus = StatusAbsent
	}
	return nil
}
