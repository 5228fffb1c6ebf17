package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "APP_TIMEZONE", "STORE_TIMEOUT_MS", "CORS_ALLOW_ORIGINS", "RATE_LIMIT_MAX", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 300, cfg.RateLimitMax)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsAllowOrigins)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/presensi.db")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("STORE_TIMEOUT_MS", "1500")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT_MAX", "abc")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/presensi.db", cfg.SQLitePath)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 1500*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsAllowOrigins)
	assert.Equal(t, 300, cfg.RateLimitMax, "nilai tidak valid jatuh ke default")
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.TrustedProxies)
}

func TestLoadLocationFallback(t *testing.T) {
	assert.Equal(t, time.Local, loadLocation("Mars/Olympus"))
	assert.Equal(t, time.Local, loadLocation(""))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PRESENSI_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("PRESENSI_TEST_KEY", "fallback"))
	assert.Equal(t, "", GetEnv("PRESENSI_TEST_KEY"))

	t.Setenv("PRESENSI_TEST_KEY", "v")
	assert.Equal(t, "v", GetEnv("PRESENSI_TEST_KEY", "fallback"))
}
