package service

import (
	"context"
	"strings"

	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
)

// Keys for provider credentials kept in the settings table
const (
	SettingEnrichmentAPIKey = "enrichment_api_key"
	SettingScoringAPIKey    = "scoring_api_key"
	SettingMapsAPIKey       = "maps_api_key"
)

// SettingsService handles application settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSetting retrieves a setting by key
func (s *SettingsService) GetSetting(ctx context.Context, key string) (*entity.AppSetting, error) {
	setting, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperror.NewNotFoundError("Setting")
	}
	return setting, nil
}

// GetValue returns a setting's value, or empty string when the key is
// not configured. Pipeline stages use this for soft credential lookup.
func (s *SettingsService) GetValue(ctx context.Context, key string) (string, error) {
	setting, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

// SetSetting creates or replaces a setting
func (s *SettingsService) SetSetting(ctx context.Context, key, value string, description *string) (*entity.AppSetting, error) {
	if key == "" {
		return nil, apperror.NewBadRequestError("Setting key is required")
	}

	setting := &entity.AppSetting{
		Key:         key,
		Value:       value,
		Description: description,
	}
	if err := s.settingsRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return s.settingsRepo.GetByKey(ctx, key)
}

// ListSettings lists all settings with credential values masked
func (s *SettingsService) ListSettings(ctx context.Context) ([]entity.AppSetting, error) {
	settings, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range settings {
		if strings.HasSuffix(settings[i].Key, "_api_key") && settings[i].Value != "" {
			settings[i].Value = MaskSecret(settings[i].Value)
		}
	}
	return settings, nil
}

// MaskSecret hides all but the last four characters of a secret
func MaskSecret(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
