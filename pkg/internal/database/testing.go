package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestGorm opens an isolated in-memory database, runs the migrations
// and points the global handle at it for the duration of a test.
func NewTestGorm(t *testing.T) *gorm.DB {
	t.Helper()

	source, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("unable to open the test database: %v", err)
	}

	// A pooled second connection to :memory: would see a different
	// database entirely.
	if sqlDB, err := source.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := RunMigration(source); err != nil {
		t.Fatalf("unable to migrate the test database: %v", err)
	}

	previous := C
	C = source
	t.Cleanup(func() {
		C = previous
	})

	return source
}
