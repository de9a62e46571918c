package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// ErrStaleVersion is returned by Put when the incoming record's version is
// not newer than the stored one.
var ErrStaleVersion = errors.New("stale config version")

// ConfigRepo owns the singleton UserConfig row.
type ConfigRepo struct {
	db *gorm.DB
}

// NewConfigRepo creates a repository over the given database handle.
func NewConfigRepo(database *gorm.DB) *ConfigRepo {
	return &ConfigRepo{db: database}
}

// Get returns the configuration record. On a fresh install the row does not
// exist yet; the first read creates it with every acknowledgement flag
// false, per the record lifecycle.
func (r *ConfigRepo) Get() (*models.UserConfig, error) {
	var cfg models.UserConfig
	err := r.db.First(&cfg, models.ConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.DefaultUserConfig()
		if err := r.db.Create(&cfg).Error; err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Put replaces the record with the full record given. The write is rejected
// with ErrStaleVersion unless the incoming version is strictly greater than
// the stored one, closing the last-write-wins gap between racing saves.
func (r *ConfigRepo) Put(cfg models.UserConfig) (*models.UserConfig, error) {
	cfg.ID = models.ConfigID
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var stored models.UserConfig
		err := tx.First(&stored, models.ConfigID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load stored config: %w", err)
		}
		if err == nil && cfg.Version <= stored.Version {
			return fmt.Errorf("%w: got %d, have %d", ErrStaleVersion, cfg.Version, stored.Version)
		}
		return tx.Save(&cfg).Error
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
