package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
)

// OrderRepository defines the interface for client order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.ClientOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClientOrder, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.ClientOrder, error)
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
