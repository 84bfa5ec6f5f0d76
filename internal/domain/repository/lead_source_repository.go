package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
)

// LeadSourceRepository defines the interface for lead source data operations
type LeadSourceRepository interface {
	Create(ctx context.Context, source *entity.LeadSource) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LeadSource, error)
	Update(ctx context.Context, source *entity.LeadSource) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.LeadSource, error)
	ListActive(ctx context.Context) ([]entity.LeadSource, error)
	FindByIndustryLocation(ctx context.Context, industry, location string) (*entity.LeadSource, error)
	RecordUsage(ctx context.Context, id uuid.UUID, leadsFound int, usedAt time.Time) error
}
