// Package dbtest membuka SQLite in-memory yang sudah dimigrasi untuk test.
package dbtest

import (
	"fmt"
	"testing"

	database "presensi_backend/internals/databases"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DSN: nama unik per test supaya DB tidak saling berbagi.
func DSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(DSN())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}
