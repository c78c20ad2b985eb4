package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// SettingsRepository provides access to the AppSettings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Save(ctx context.Context, settings *model.AppSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns a new instance of SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.AppSettings, error) {
	var settings model.AppSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", model.SettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save overwrites the whole singleton row (last-writer-wins)
func (r *settingsRepository) Save(ctx context.Context, settings *model.AppSettings) error {
	settings.ID = model.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
