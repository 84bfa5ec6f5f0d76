package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	orderRepo repository.OrderRepository,
) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
	}
}

// CreateClientInput represents the input for creating a client
type CreateClientInput struct {
	UserID      uuid.UUID
	Name        string
	Company     *string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	GSTNumber   *string
	PANNumber   *string
	CreditLimit float64
	Type        *string
	Notes       *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		UserID:      input.UserID,
		Name:        input.Name,
		Company:     input.Company,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		GSTNumber:   input.GSTNumber,
		PANNumber:   input.PANNumber,
		CreditLimit: input.CreditLimit,
		Type:        input.Type,
		Status:      "active",
		Notes:       input.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID with its current order count
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	count, err := s.orderRepo.CountByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	client.TotalOrders = int(count)

	return client, nil
}

// ListClientsInput represents the input for listing clients
type ListClientsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Search     string
	Status     string
}

// ListClients lists clients with filtering
func (s *ClientService) ListClients(ctx context.Context, input *ListClientsInput) (*pagination.PaginatedResult[entity.Client], error) {
	params := &repository.ClientFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
	}

	clients, total, err := s.clientRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClientInput represents the input for updating a client
type UpdateClientInput struct {
	ID          uuid.UUID
	Name        string
	Company     *string
	Email       *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	GSTNumber   *string
	PANNumber   *string
	CreditLimit float64
	Type        *string
	Status      string
	Notes       *string
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	client.Name = input.Name
	client.Company = input.Company
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	client.City = input.City
	client.State = input.State
	client.Country = input.Country
	client.GSTNumber = input.GSTNumber
	client.PANNumber = input.PANNumber
	client.CreditLimit = input.CreditLimit
	client.Type = input.Type
	if input.Status != "" {
		client.Status = input.Status
	}
	client.Notes = input.Notes

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	return s.clientRepo.Delete(ctx, id)
}

// ListClientOrders lists the orders placed by a client
func (s *ClientService) ListClientOrders(ctx context.Context, clientID uuid.UUID) ([]entity.ClientOrder, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	return s.orderRepo.ListByClient(ctx, clientID)
}
