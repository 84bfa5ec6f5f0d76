package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// RegistrationRepository defines the interface for plan registration data operations
type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.PlanRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PlanRegistration, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.PlanRegistration, int64, error)
}
