package students

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"presensi_backend/internals/features/attendance/students/dto"
	"presensi_backend/internals/features/attendance/students/service"
	"presensi_backend/internals/helpers/apperr"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// StudentSeed: satu baris file roster (JSON atau YAML).
type StudentSeed struct {
	RegNo       string `json:"reg_no"       yaml:"reg_no"`
	Name        string `json:"name"         yaml:"name"`
	Section     string `json:"section"      yaml:"section"`
	MacAddress  string `json:"mac_address"  yaml:"mac_address"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	Email       string `json:"email"        yaml:"email"`
}

type Result struct {
	Inserted int
	Skipped  int
}

// ParseRoster membaca isi file roster; format ditentukan dari ekstensi.
func ParseRoster(path string, raw []byte) ([]StudentSeed, error) {
	var rows []StudentSeed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("decode yaml %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("decode json %s: %w", path, err)
		}
	}
	return rows, nil
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// SeedStudentsFromFile memasukkan roster; siswa yang sudah ada (reg_no/device sama) dilewati.
func SeedStudentsFromFile(ctx context.Context, db *gorm.DB, filePath string) (Result, error) {
	log.Println("📥 Membaca file:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("baca roster: %w", err)
	}
	rows, err := ParseRoster(filePath, raw)
	if err != nil {
		return Result{}, err
	}

	svc := service.New(db, 0)
	var res Result
	for _, r := range rows {
		_, err := svc.Create(ctx, dto.CreateStudentRequest{
			RegistrationNumber: r.RegNo,
			Name:               r.Name,
			Section:            r.Section,
			DeviceID:           r.MacAddress,
			PhoneNumber:        optional(r.PhoneNumber),
			Email:              optional(r.Email),
		})
		switch {
		case err == nil:
			res.Inserted++
			log.Printf("✅ Berhasil insert siswa %s (%s)", r.Name, r.RegNo)
		case apperr.Is(err, apperr.KindConflict):
			res.Skipped++
			log.Printf("ℹ️ Siswa %s sudah ada, lewati...", r.RegNo)
		default:
			return res, fmt.Errorf("seed siswa %s: %w", r.RegNo, err)
		}
	}
	log.Printf("✅ Seed roster selesai: %d baru, %d dilewati", res.Inserted, res.Skipped)
	return res, nil
}
