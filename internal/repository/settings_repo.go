package repository

import (
	"context"
	"errors"

	"billdesk/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the single settings row, creating it with defaults when missing.
func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := GetDB(ctx, r.db).First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.Settings{
			ID:             1,
			BusinessName:   "My Business",
			CurrencySymbol: "$",
			TaxLabel:       "Tax",
			TemplateType:   "Basic",
		}
		if err := GetDB(ctx, r.db).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *model.Settings) error {
	settings.ID = 1
	return GetDB(ctx, r.db).Save(settings).Error
}
