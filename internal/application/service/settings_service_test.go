package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/pkg/apperror"
)

func TestSetSettingCreatesAndReplaces(t *testing.T) {
	svc := NewSettingsService(newMockSettingsRepo())

	setting, err := svc.SetSetting(context.Background(), SettingMapsAPIKey, "first-key", stringPtr("Places credential"))
	require.NoError(t, err)
	assert.Equal(t, "first-key", setting.Value)

	setting, err = svc.SetSetting(context.Background(), SettingMapsAPIKey, "second-key", nil)
	require.NoError(t, err)
	assert.Equal(t, "second-key", setting.Value)
}

func TestSetSettingEmptyKey(t *testing.T) {
	svc := NewSettingsService(newMockSettingsRepo())

	_, err := svc.SetSetting(context.Background(), "", "value", nil)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGetSettingNotFound(t *testing.T) {
	svc := NewSettingsService(newMockSettingsRepo())

	_, err := svc.GetSetting(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetValueSoftEmpty(t *testing.T) {
	svc := NewSettingsService(newMockSettingsRepo())

	// Unconfigured keys resolve to empty, not an error.
	value, err := svc.GetValue(context.Background(), SettingEnrichmentAPIKey)

	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestGetValueReturnsStoredValue(t *testing.T) {
	repo := newMockSettingsRepo()
	svc := NewSettingsService(repo)
	_, err := svc.SetSetting(context.Background(), SettingScoringAPIKey, "sk-live-1234", nil)
	require.NoError(t, err)

	value, err := svc.GetValue(context.Background(), SettingScoringAPIKey)

	require.NoError(t, err)
	assert.Equal(t, "sk-live-1234", value)
}

func TestListSettingsMasksCredentials(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.settings["maps_api_key"] = &entity.AppSetting{Key: "maps_api_key", Value: "AIzaSyExample9876"}
	repo.settings["company_name"] = &entity.AppSetting{Key: "company_name", Value: "Qwii Prints"}
	repo.settings["scoring_api_key"] = &entity.AppSetting{Key: "scoring_api_key", Value: ""}
	svc := NewSettingsService(repo)

	settings, err := svc.ListSettings(context.Background())

	require.NoError(t, err)
	byKey := make(map[string]string, len(settings))
	for _, s := range settings {
		byKey[s.Key] = s.Value
	}

	assert.Equal(t, "*************9876", byKey["maps_api_key"])
	// Non-credential values pass through untouched.
	assert.Equal(t, "Qwii Prints", byKey["company_name"])
	// Empty credentials stay empty rather than masking to asterisks.
	assert.Equal(t, "", byKey["scoring_api_key"])
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "****", MaskSecret("abcd"))
	assert.Equal(t, "**", MaskSecret("ab"))
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "*****6789", MaskSecret("123456789"))
}
