package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	domainRepo "github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/pagination"
	"gorm.io/gorm"
)

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new plan registration repository
func NewRegistrationRepository(db *gorm.DB) domainRepo.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.PlanRegistration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PlanRegistration, error) {
	var registration entity.PlanRegistration
	err := r.db.WithContext(ctx).First(&registration, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &registration, err
}

func (r *registrationRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.PlanRegistration, int64, error) {
	var registrations []entity.PlanRegistration
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PlanRegistration{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&registrations).Error

	return registrations, total, err
}
