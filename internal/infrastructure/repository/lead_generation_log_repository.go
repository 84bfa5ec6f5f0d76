package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	domainRepo "github.com/qwii/qwii-api/internal/domain/repository"
	"gorm.io/gorm"
)

type leadGenerationLogRepository struct {
	db *gorm.DB
}

// NewLeadGenerationLogRepository creates a new pipeline run log repository
func NewLeadGenerationLogRepository(db *gorm.DB) domainRepo.LeadGenerationLogRepository {
	return &leadGenerationLogRepository{db: db}
}

func (r *leadGenerationLogRepository) Create(ctx context.Context, log *entity.LeadGenerationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *leadGenerationLogRepository) Update(ctx context.Context, log *entity.LeadGenerationLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *leadGenerationLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LeadGenerationLog, error) {
	var log entity.LeadGenerationLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &log, err
}

func (r *leadGenerationLogRepository) ListRecent(ctx context.Context, limit int) ([]entity.LeadGenerationLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var logs []entity.LeadGenerationLog
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
