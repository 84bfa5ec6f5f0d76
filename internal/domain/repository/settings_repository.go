package repository

import (
	"context"

	"github.com/qwii/qwii-api/internal/domain/entity"
)

// SettingsRepository defines the interface for application settings access
type SettingsRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.AppSetting, error)
	Upsert(ctx context.Context, setting *entity.AppSetting) error
	List(ctx context.Context) ([]entity.AppSetting, error)
}
