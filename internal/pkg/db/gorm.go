package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/config"
	"github.com/Lucien-Luc/Programs/internal/model"
)

// NewGormDB opens the storage backend selected by configuration. Exactly one
// backend is live per deployment.
func NewGormDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required for postgres driver")
		}
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Program{},
		&model.Activity{},
		&model.TableConfig{},
		&model.ColumnHeader{},
		&model.ProgramSuggestion{},
	)
}

// Ping verifies the underlying connection is alive.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
