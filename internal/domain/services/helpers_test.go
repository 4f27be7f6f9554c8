package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/database"
)

// newTestDB opens a private in-memory database with foreign keys enforced
// and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		SessionSecretKey:       "test-secret-key",
		SessionTTLHours:        1,
		DefaultOfficerUsername: "admin",
		DefaultOfficerPassword: "admin123",
	}
}

func strptr(s string) *string {
	return &s
}
