package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
)

// LeadGenerationLogRepository defines the interface for pipeline run logs
type LeadGenerationLogRepository interface {
	Create(ctx context.Context, log *entity.LeadGenerationLog) error
	Update(ctx context.Context, log *entity.LeadGenerationLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LeadGenerationLog, error)
	ListRecent(ctx context.Context, limit int) ([]entity.LeadGenerationLog, error)
}
