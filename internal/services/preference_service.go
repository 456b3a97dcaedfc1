package services

import (
	"context"
	"strings"

	"triptailor/internal/models/db_models"
	"triptailor/internal/models/request_models"
	"triptailor/internal/repositories"
	"triptailor/pkg/utils"
)

type PreferenceServiceInterface interface {
	SavePreferences(ctx context.Context, req request_models.SavePreferencesRequest) error
	GetPreferences(ctx context.Context, deviceID string) (*request_models.UserPreferences, error)
}

type PreferenceService struct {
	preferenceRepo repositories.PreferenceRepositoryInterface
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepositoryInterface) PreferenceServiceInterface {
	return &PreferenceService{
		preferenceRepo: preferenceRepo,
	}
}

var (
	validBudgets = map[string]bool{
		"low": true, "medium": true, "high": true,
	}
	validTransportation = map[string]bool{
		"transit": true, "driving": true, "walking": true, "rideshare": true,
	}
	validGroupSizes = map[string]bool{
		"solo": true, "couple": true, "small": true, "large": true,
	}
)

// SavePreferences validates and persists an onboarding profile. The
// single-valued fields must hold valid enum values; interests and
// favorite areas may be empty (the composer copes with empty sets).
func (p *PreferenceService) SavePreferences(ctx context.Context, req request_models.SavePreferencesRequest) error {
	if strings.TrimSpace(req.DeviceID) == "" {
		return utils.ErrInvalidInput
	}
	if !validBudgets[req.BudgetRange] {
		return utils.ErrInvalidInput
	}
	if !validTransportation[req.Transportation] {
		return utils.ErrInvalidInput
	}
	if !validGroupSizes[req.GroupSize] {
		return utils.ErrInvalidInput
	}

	pref := &db_models.Preference{
		DeviceID:       req.DeviceID,
		Interests:      req.Interests,
		BudgetRange:    req.BudgetRange,
		Transportation: req.Transportation,
		GroupSize:      req.GroupSize,
		FavoriteAreas:  req.FavoriteAreas,
	}

	if err := p.preferenceRepo.Upsert(ctx, pref); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PreferenceService) GetPreferences(ctx context.Context, deviceID string) (*request_models.UserPreferences, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, utils.ErrInvalidInput
	}

	pref, err := p.preferenceRepo.GetByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		return nil, utils.ErrPreferencesNotFound
	}
	return preferencesFromModel(pref), nil
}
