package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// App menampung seluruh konfigurasi proses. Dibangun sekali lewat Load().
type App struct {
	Port string

	DBDriver   string // postgres | sqlite
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	Location     *time.Location
	StoreTimeout time.Duration

	CorsAllowOrigins []string
	RateLimitMax     int
	// TrustedProxies: CIDR/IP proxy yang boleh mengisi X-Forwarded-For. Kosong = header diabaikan.
	TrustedProxies []string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env tidak ditemukan, memakai ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, memakai ENV dari sistem")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load membaca ENV (setelah LoadEnv) menjadi App.
func Load() App {
	cfg := App{
		Port:       GetEnv("PORT", "3000"),
		DBDriver:   strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),
		SQLitePath: GetEnv("DB_SQLITE_PATH", "presensi.db"),

		Location:     loadLocation(GetEnv("APP_TIMEZONE")),
		StoreTimeout: time.Duration(getInt("STORE_TIMEOUT_MS", 3000)) * time.Millisecond,

		CorsAllowOrigins: splitList(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 300),
		TrustedProxies:   splitList(GetEnv("TRUSTED_PROXIES")),
	}

	if cfg.DBDriver == "postgres" && cfg.DBName == "" {
		log.Println("❌ DB_NAME belum diset!")
	}
	return cfg
}

// loadLocation: kosong → zona waktu lokal server.
func loadLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] APP_TIMEZONE %q tidak valid (%v), fallback ke lokal", name, err)
		return time.Local
	}
	return loc
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[WARN] %s=%q tidak valid, pakai default %d", key, v, def)
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if strings.EqualFold(GetEnv("DB_LOG_QUERIES"), "true") {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
