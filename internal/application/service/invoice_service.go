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

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	clientRepo repository.ClientRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		clientRepo:  clientRepo,
	}
}

// CreateInvoiceInput represents the input for creating an invoice.
// Subtotal and Total are stored as supplied so callers can round or
// adjust figures; nothing is rederived from the line items.
type CreateInvoiceInput struct {
	UserID    uuid.UUID
	ClientID  uuid.UUID
	OrderID   *uuid.UUID
	IssueDate time.Time
	DueDate   time.Time
	Subtotal  float64
	CGST      float64
	SGST      float64
	IGST      float64
	Total     float64
	Notes     *string
	Items     []InvoiceItemInput
}

// InvoiceItemInput represents a line item input. Amount is the line
// total as billed, not necessarily quantity times rate.
type InvoiceItemInput struct {
	Description string
	Quantity    int
	Rate        float64
	Amount      float64
}

// CreateInvoice creates a new invoice with its line items
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	nextNum, err := s.invoiceRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		UserID:        input.UserID,
		ClientID:      input.ClientID,
		OrderID:       input.OrderID,
		InvoiceNumber: document.KindInvoice.FormatNumber(nextNum),
		Status:        enum.InvoiceStatusDraft,
		IssueDate:     input.IssueDate,
		DueDate:       input.DueDate,
		Subtotal:      input.Subtotal,
		CGST:          input.CGST,
		SGST:          input.SGST,
		IGST:          input.IGST,
		Total:         input.Total,
		Notes:         input.Notes,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	if len(input.Items) > 0 {
		items := make([]entity.InvoiceItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.InvoiceItem{
				InvoiceID:   invoice.ID,
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
				Amount:      item.Amount,
			}
		}
		if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	return s.invoiceRepo.GetWithDetails(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice by ID with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoicesInput represents the input for listing invoices
type ListInvoicesInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	ClientID   *uuid.UUID
}

// ListInvoices lists invoices with filtering, newest first
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
	}

	invoices, total, err := s.invoiceRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the input for updating an invoice
type UpdateInvoiceInput struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	OrderID   *uuid.UUID
	IssueDate time.Time
	DueDate   time.Time
	Subtotal  float64
	CGST      float64
	SGST      float64
	IGST      float64
	Total     float64
	Notes     *string
	Items     []InvoiceItemInput
}

// UpdateInvoice replaces the invoice header fields and its line items
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	invoice.ClientID = input.ClientID
	invoice.OrderID = input.OrderID
	invoice.IssueDate = input.IssueDate
	invoice.DueDate = input.DueDate
	invoice.Subtotal = input.Subtotal
	invoice.CGST = input.CGST
	invoice.SGST = input.SGST
	invoice.IGST = input.IGST
	invoice.Total = input.Total
	invoice.Notes = input.Notes

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.itemRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}

	if len(input.Items) > 0 {
		items := make([]entity.InvoiceItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.InvoiceItem{
				InvoiceID:   invoice.ID,
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
				Amount:      item.Amount,
			}
		}
		if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	return s.invoiceRepo.GetWithDetails(ctx, invoice.ID)
}

// DeleteInvoice deletes an invoice and its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.itemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// UpdateInvoiceStatus updates the status of an invoice. Marking an
// invoice paid stamps the payment date in the same update.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	if !status.Valid() {
		return apperror.NewBadRequestError("Invalid invoice status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	dateField, _ := document.KindInvoice.DateFieldForStatus(status.String())
	return s.invoiceRepo.UpdateStatus(ctx, id, status, dateField)
}

// InvoiceStats summarizes invoices by status and amount
type InvoiceStats struct {
	TotalInvoices int64            `json:"total_invoices"`
	TotalAmount   float64          `json:"total_amount"`
	PaidAmount    float64          `json:"paid_amount"`
	PendingAmount float64          `json:"pending_amount"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// GetInvoiceStats aggregates invoice counts and amounts for a user
func (s *InvoiceService) GetInvoiceStats(ctx context.Context, userID uuid.UUID) (*InvoiceStats, error) {
	rows, err := s.invoiceRepo.StatusTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildInvoiceStats(rows), nil
}

// BuildInvoiceStats folds aggregate rows into an invoice summary.
// Pending covers draft, sent and overdue amounts; cancelled invoices
// count but contribute to no amount bucket.
func BuildInvoiceStats(rows []repository.StatusTotal) *InvoiceStats {
	stats := &InvoiceStats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		stats.TotalInvoices += row.Count
		stats.ByStatus[row.Status] = row.Count
		switch enum.InvoiceStatus(row.Status) {
		case enum.InvoiceStatusPaid:
			stats.PaidAmount += row.Amount
			stats.TotalAmount += row.Amount
		case enum.InvoiceStatusCancelled:
			// excluded from amounts
		default:
			stats.PendingAmount += row.Amount
			stats.TotalAmount += row.Amount
		}
	}
	return stats
}
