package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// AgreementRepository defines the interface for agreement data operations
type AgreementRepository interface {
	Create(ctx context.Context, agreement *entity.Agreement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Agreement, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Agreement, error)
	GetByShareToken(ctx context.Context, token uuid.UUID) (*entity.Agreement, error)
	Update(ctx context.Context, agreement *entity.Agreement) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *AgreementFilterParams) ([]entity.Agreement, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AgreementStatus, dateField string) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
	StatusTotals(ctx context.Context, userID uuid.UUID) ([]StatusTotal, error)
}

// AgreementFilterParams contains filtering parameters for agreement queries
type AgreementFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.AgreementStatus
	Type       *enum.AgreementType
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}
