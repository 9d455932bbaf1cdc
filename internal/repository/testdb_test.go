package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lucien-Luc/Programs/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.Program{},
		&model.Activity{},
		&model.TableConfig{},
		&model.ColumnHeader{},
		&model.ProgramSuggestion{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}
