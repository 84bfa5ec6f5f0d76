package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
	domainRepo "github.com/qwii/qwii-api/internal/domain/repository"
	"gorm.io/gorm"
)

type agreementRepository struct {
	db *gorm.DB
}

// NewAgreementRepository creates a new agreement repository
func NewAgreementRepository(db *gorm.DB) domainRepo.AgreementRepository {
	return &agreementRepository{db: db}
}

func (r *agreementRepository) Create(ctx context.Context, agreement *entity.Agreement) error {
	return r.db.WithContext(ctx).Create(agreement).Error
}

func (r *agreementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Agreement, error) {
	var agreement entity.Agreement
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&agreement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &agreement, err
}

func (r *agreementRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Agreement, error) {
	return r.GetByID(ctx, id)
}

func (r *agreementRepository) GetByShareToken(ctx context.Context, token uuid.UUID) (*entity.Agreement, error) {
	var agreement entity.Agreement
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&agreement, "share_token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &agreement, err
}

func (r *agreementRepository) Update(ctx context.Context, agreement *entity.Agreement) error {
	return r.db.WithContext(ctx).Save(agreement).Error
}

func (r *agreementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Agreement{}, "id = ?", id).Error
}

func (r *agreementRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.AgreementFilterParams) ([]entity.Agreement, int64, error) {
	var agreements []entity.Agreement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Agreement{})

	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Where("agreement_number ILIKE ? OR title ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order(sortBy + " " + sortOrder).
		Find(&agreements).Error

	return agreements, total, err
}

func (r *agreementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AgreementStatus, dateField string) error {
	updates := map[string]interface{}{"status": status}
	if dateField != "" {
		updates[dateField] = time.Now()
	}
	return r.db.WithContext(ctx).Model(&entity.Agreement{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *agreementRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Agreement{}).Count(&count).Error
	return int(count) + 1, err
}

func (r *agreementRepository) StatusTotals(ctx context.Context, userID uuid.UUID) ([]domainRepo.StatusTotal, error) {
	var rows []domainRepo.StatusTotal
	query := r.db.WithContext(ctx).Model(&entity.Agreement{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(value), 0) as amount").
		Group("status")
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Scan(&rows).Error
	return rows, err
}
