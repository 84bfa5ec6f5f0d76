package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/document"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	itemRepo      repository.QuotationItemRepository
	clientRepo    repository.ClientRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	itemRepo repository.QuotationItemRepository,
	clientRepo repository.ClientRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		itemRepo:      itemRepo,
		clientRepo:    clientRepo,
	}
}

// CreateQuotationInput represents the input for creating a quotation.
// Subtotal and Total are stored as supplied so callers can round or
// adjust figures; nothing is rederived from the line items.
type CreateQuotationInput struct {
	UserID     uuid.UUID
	ClientID   uuid.UUID
	ValidUntil time.Time
	Subtotal   float64
	Tax        float64
	Discount   float64
	Total      float64
	Terms      *string
	Notes      *string
	Items      []QuotationItemInput
}

// QuotationItemInput represents a line item input. Total is the line
// total as quoted, not necessarily derived from quantity, unit price
// and discount.
type QuotationItemInput struct {
	Product     string
	Description *string
	Quantity    int
	UnitPrice   float64
	Discount    float64
	Total       float64
}

// CreateQuotation creates a new quotation with its line items
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	quotation := &entity.Quotation{
		UserID:      input.UserID,
		ClientID:    input.ClientID,
		QuoteNumber: document.KindQuotation.FormatNumber(nextNum),
		Status:      enum.QuotationStatusDraft,
		ValidUntil:  input.ValidUntil,
		Subtotal:    input.Subtotal,
		Tax:         input.Tax,
		Discount:    input.Discount,
		Total:       input.Total,
		Terms:       input.Terms,
		Notes:       input.Notes,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	if len(input.Items) > 0 {
		items := make([]entity.QuotationItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.QuotationItem{
				QuotationID: quotation.ID,
				Product:     item.Product,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Discount:    item.Discount,
				Total:       item.Total,
			}
		}
		if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	return s.quotationRepo.GetWithDetails(ctx, quotation.ID)
}

// GetQuotation retrieves a quotation by ID with its items
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	ClientID   *uuid.UUID
}

// ListQuotations lists quotations with filtering, newest first
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
	}

	quotations, total, err := s.quotationRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ValidUntil time.Time
	Subtotal   float64
	Tax        float64
	Discount   float64
	Total      float64
	Terms      *string
	Notes      *string
	Items      []QuotationItemInput
}

// UpdateQuotation replaces the quotation header fields and its line items
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	quotation.ClientID = input.ClientID
	quotation.ValidUntil = input.ValidUntil
	quotation.Subtotal = input.Subtotal
	quotation.Tax = input.Tax
	quotation.Discount = input.Discount
	quotation.Total = input.Total
	quotation.Terms = input.Terms
	quotation.Notes = input.Notes

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.itemRepo.DeleteByQuotationID(ctx, quotation.ID); err != nil {
		return nil, err
	}

	if len(input.Items) > 0 {
		items := make([]entity.QuotationItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.QuotationItem{
				QuotationID: quotation.ID,
				Product:     item.Product,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Discount:    item.Discount,
				Total:       item.Total,
			}
		}
		if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	return s.quotationRepo.GetWithDetails(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation and its items
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if err := s.itemRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}

	return s.quotationRepo.Delete(ctx, id)
}

// UpdateQuotationStatus updates the status of a quotation. Accepting a
// quotation stamps the acceptance date in the same update.
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if !status.Valid() {
		return apperror.NewBadRequestError("Invalid quotation status")
	}

	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	dateField, _ := document.KindQuotation.DateFieldForStatus(status.String())
	return s.quotationRepo.UpdateStatus(ctx, id, status, dateField)
}

// QuotationStats summarizes quotations by status and amount
type QuotationStats struct {
	TotalQuotations int64            `json:"total_quotations"`
	TotalAmount     float64          `json:"total_amount"`
	AcceptedAmount  float64          `json:"accepted_amount"`
	ByStatus        map[string]int64 `json:"by_status"`
}

// GetQuotationStats aggregates quotation counts and amounts for a user
func (s *QuotationService) GetQuotationStats(ctx context.Context, userID uuid.UUID) (*QuotationStats, error) {
	rows, err := s.quotationRepo.StatusTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildQuotationStats(rows), nil
}

// BuildQuotationStats folds aggregate rows into a quotation summary
func BuildQuotationStats(rows []repository.StatusTotal) *QuotationStats {
	stats := &QuotationStats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		stats.TotalQuotations += row.Count
		stats.TotalAmount += row.Amount
		stats.ByStatus[row.Status] = row.Count
		if enum.QuotationStatus(row.Status) == enum.QuotationStatusAccepted {
			stats.AcceptedAmount += row.Amount
		}
	}
	return stats
}
