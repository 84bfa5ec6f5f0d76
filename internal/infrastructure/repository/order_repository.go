package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	domainRepo "github.com/qwii/qwii-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new client order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.ClientOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClientOrder, error) {
	var order entity.ClientOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.ClientOrder, error) {
	var orders []entity.ClientOrder
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ClientOrder{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}
