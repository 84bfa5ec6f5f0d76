package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	domainRepo "github.com/qwii/qwii-api/internal/domain/repository"
	"gorm.io/gorm"
)

type leadSourceRepository struct {
	db *gorm.DB
}

// NewLeadSourceRepository creates a new lead source repository
func NewLeadSourceRepository(db *gorm.DB) domainRepo.LeadSourceRepository {
	return &leadSourceRepository{db: db}
}

func (r *leadSourceRepository) Create(ctx context.Context, source *entity.LeadSource) error {
	return r.db.WithContext(ctx).Create(source).Error
}

func (r *leadSourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LeadSource, error) {
	var source entity.LeadSource
	err := r.db.WithContext(ctx).First(&source, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &source, err
}

func (r *leadSourceRepository) Update(ctx context.Context, source *entity.LeadSource) error {
	return r.db.WithContext(ctx).Save(source).Error
}

func (r *leadSourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.LeadSource{}, "id = ?", id).Error
}

func (r *leadSourceRepository) List(ctx context.Context) ([]entity.LeadSource, error) {
	var sources []entity.LeadSource
	err := r.db.WithContext(ctx).
		Order("priority DESC").
		Find(&sources).Error
	return sources, err
}

func (r *leadSourceRepository) ListActive(ctx context.Context) ([]entity.LeadSource, error) {
	var sources []entity.LeadSource
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC").
		Find(&sources).Error
	return sources, err
}

func (r *leadSourceRepository) FindByIndustryLocation(ctx context.Context, industry, location string) (*entity.LeadSource, error) {
	var sources []entity.LeadSource
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND industry = ?", true, industry).
		Order("priority DESC").
		Find(&sources).Error
	if err != nil {
		return nil, err
	}
	// Location membership is checked in Go because target_locations is a
	// JSON column.
	for i := range sources {
		for _, loc := range sources[i].TargetLocations {
			if loc == location {
				return &sources[i], nil
			}
		}
	}
	return nil, nil
}

func (r *leadSourceRepository) RecordUsage(ctx context.Context, id uuid.UUID, leadsFound int, usedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.LeadSource{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_leads_found": gorm.Expr("total_leads_found + ?", leadsFound),
			"last_used_date":    usedAt,
		}).Error
}
