package seeds

import (
	"context"
	"log"

	students "presensi_backend/internals/seeds/students"

	"gorm.io/gorm"
)

// RunAllSeeds menjalankan semua seeder yang tersedia. rosterPath kosong → dilewati.
func RunAllSeeds(ctx context.Context, db *gorm.DB, rosterPath string) error {
	//* Roster
	if rosterPath == "" {
		log.Println("ℹ️ Roster seed tidak diset, lewati...")
		return nil
	}
	_, err := students.SeedStudentsFromFile(ctx, db, rosterPath)
	return err
}
