package dto

import (
	"strings"
	"time"

	"presensi_backend/internals/features/attendance/students/model"
	helper "presensi_backend/internals/helpers"

	"github.com/google/uuid"
)

/* =========================================================
   REQUEST
   ========================================================= */

// CreateStudentRequest menerima nama field baru maupun nama lama dari UI
// (reg_no, mac_address).
type CreateStudentRequest struct {
	RegistrationNumber string  `json:"registration_number" validate:"required,max=64"`
	Name               string  `json:"name"                validate:"required,max=160"`
	Section            string  `json:"section"             validate:"required,max=64"`
	DeviceID           string  `json:"device_id"           validate:"required,max=64"`
	PhoneNumber        *string `json:"phone_number"        validate:"omitempty,max=32"`
	Email              *string `json:"email"               validate:"omitempty,email,max=160"`

	// alias lama
	RegNo      string `json:"reg_no"`
	MacAddress string `json:"mac_address"`
	DeviceIDJS string `json:"deviceId"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Normalize menggabungkan alias & merapikan input sebelum validasi.
func (r *CreateStudentRequest) Normalize() {
	r.RegistrationNumber = firstNonEmpty(r.RegistrationNumber, r.RegNo)
	r.DeviceID = helper.NormalizeDeviceID(firstNonEmpty(r.DeviceID, r.DeviceIDJS, r.MacAddress))
	r.Name = strings.TrimSpace(r.Name)
	r.Section = strings.TrimSpace(r.Section)
	r.PhoneNumber = trimPtr(r.PhoneNumber)
	r.Email = trimPtr(r.Email)
	r.RegNo, r.MacAddress, r.DeviceIDJS = "", "", ""
}

func (r CreateStudentRequest) Validate() error {
	return helper.ValidateStruct(r, "")
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentRegNo:       r.RegistrationNumber,
		StudentName:        r.Name,
		StudentSection:     r.Section,
		StudentDeviceID:    r.DeviceID,
		StudentPhoneNumber: r.PhoneNumber,
		StudentEmail:       r.Email,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	ID                 uuid.UUID `json:"student_id"`
	RegistrationNumber string    `json:"registration_number"`
	Name               string    `json:"name"`
	Section            string    `json:"section"`
	DeviceID           string    `json:"device_id"`
	PhoneNumber        *string   `json:"phone_number,omitempty"`
	Email              *string   `json:"email,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:                 m.StudentID,
		RegistrationNumber: m.StudentRegNo,
		Name:               m.StudentName,
		Section:            m.StudentSection,
		DeviceID:           m.StudentDeviceID,
		PhoneNumber:        m.StudentPhoneNumber,
		Email:              m.StudentEmail,
		CreatedAt:          m.StudentCreatedAt,
	}
}

func FromStudentModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromStudentModel(r))
	}
	return out
}
