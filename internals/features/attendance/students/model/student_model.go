package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel = satu baris roster. reg_no & device_id masing-masing unik.
type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentRegNo    string `gorm:"type:varchar(64);not null;uniqueIndex:uq_students_reg_no;column:student_reg_no"       json:"student_reg_no"`
	StudentName     string `gorm:"type:varchar(160);not null;column:student_name"                                       json:"student_name"`
	StudentSection  string `gorm:"type:varchar(64);not null;index:idx_students_section;column:student_section"          json:"student_section"`
	StudentDeviceID string `gorm:"type:varchar(64);not null;uniqueIndex:uq_students_device_id;column:student_device_id" json:"student_device_id"`

	StudentPhoneNumber *string `gorm:"type:varchar(32);column:student_phone_number" json:"student_phone_number,omitempty"`
	StudentEmail       *string `gorm:"type:varchar(160);column:student_email"       json:"student_email,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
