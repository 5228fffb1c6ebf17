package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"presensi_backend/internals/configs"
	headcountModel "presensi_backend/internals/features/attendance/headcount/model"
	recordModel "presensi_backend/internals/features/attendance/records/model"
	studentModel "presensi_backend/internals/features/attendance/students/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB membuka koneksi sesuai DB_DRIVER.
func ConnectDB(cfg configs.App) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		log.Printf("🔌 Koneksi ke SQLite (%s)...", cfg.SQLitePath)
		db, err = OpenSQLite(cfg.SQLitePath)
	case "postgres", "":
		log.Println("🔌 Koneksi ke PostgreSQL...")
		db, err = openPostgres(cfg)
	default:
		return nil, fmt.Errorf("DB_DRIVER tidak dikenal: %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func openPostgres(cfg configs.App) (*gorm.DB, error) {
	// statement_timeout selaras dengan STORE_TIMEOUT
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=presensi&options=%s",
		url.QueryEscape(cfg.DBUser),
		url.QueryEscape(cfg.DBPassword),
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
		url.QueryEscape(fmt.Sprintf("-c statement_timeout=%d", cfg.StoreTimeout.Milliseconds())),
	)
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
}

// OpenSQLite dipakai untuk dev lokal & test. Satu koneksi saja supaya
// in-memory DB tidak terpecah antar koneksi.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// AutoMigrate membuat/menyesuaikan tabel roster, presensi, reconcile log, dan headcount.
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] AutoMigrate students, attendance_records, attendance_reconcile_logs, headcount_snapshots...")
	return db.AutoMigrate(
		&studentModel.StudentModel{},
		&recordModel.AttendanceRecordModel{},
		&recordModel.ReconcileLogModel{},
		&headcountModel.HeadcountSnapshotModel{},
	)
}

func TunePool(db *gorm.DB) {
	if db.Dialector.Name() != "postgres" {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// WithStoreTimeout membatasi satu panggilan store. d <= 0 → default 3 detik.
func WithStoreTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d <= 0 {
		d = 3 * time.Second
	}
	return context.WithTimeout(ctx, d)
}
