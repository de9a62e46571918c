package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

const (
	// DataDirName is the directory name for vibe-kanban data
	DataDirName = ".vibe-kanban"
	// DBFileName is the database filename within the data directory
	DBFileName = "db.sqlite"
	// DataDirEnvVar overrides the default data directory
	DataDirEnvVar = "VK_DATA_DIR"
)

// Open opens the SQLite database at dbPath and runs migrations. The handle
// is returned to the caller; nothing is stashed in package state, so tests
// open their own throwaway databases.
func Open(dbPath string) (*gorm.DB, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	database, err := gorm.Open(sqlite.Open(dbPath), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports multiple readers but only one writer; keep the pool
	// small so concurrent reads still work within transactions.
	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	// WAL mode allows readers during a write; busy timeout waits instead of
	// failing immediately on a locked database.
	if err := database.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := database.Exec("PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := runMigrations(database); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// runMigrations runs all database migrations
func runMigrations(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.UserConfig{},
		&models.Project{},
		&models.Task{},
	)
}

// Close closes the underlying connection of a gorm handle.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// DefaultDBPath returns the database path, honoring VK_DATA_DIR.
func DefaultDBPath() (string, error) {
	if dir := os.Getenv(DataDirEnvVar); dir != "" {
		return filepath.Join(dir, DBFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DataDirName, DBFileName), nil
}
