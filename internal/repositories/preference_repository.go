package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"triptailor/internal/models/db_models"
)

type PreferenceRepositoryInterface interface {
	Upsert(ctx context.Context, pref *db_models.Preference) error
	// GetByDeviceID returns (nil, nil) when no profile exists for the device.
	GetByDeviceID(ctx context.Context, deviceID string) (*db_models.Preference, error)
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &PreferenceRepository{db: db}
}

type PreferenceRepository struct {
	db *gorm.DB
}

func (r *PreferenceRepository) Upsert(ctx context.Context, pref *db_models.Preference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"interests", "budget_range", "transportation", "group_size", "favorite_areas", "updated_at",
		}),
	}).Create(pref).Error
}

func (r *PreferenceRepository) GetByDeviceID(ctx context.Context, deviceID string) (*db_models.Preference, error) {
	var pref db_models.Preference
	err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}
