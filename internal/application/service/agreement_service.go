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

// AgreementService handles agreement-related operations
type AgreementService struct {
	agreementRepo repository.AgreementRepository
	clientRepo    repository.ClientRepository
}

// NewAgreementService creates a new agreement service
func NewAgreementService(
	agreementRepo repository.AgreementRepository,
	clientRepo repository.ClientRepository,
) *AgreementService {
	return &AgreementService{
		agreementRepo: agreementRepo,
		clientRepo:    clientRepo,
	}
}

// CreateAgreementInput represents the input for creating an agreement
type CreateAgreementInput struct {
	UserID           uuid.UUID
	ClientID         uuid.UUID
	Title            string
	Type             enum.AgreementType
	StartDate        time.Time
	EndDate          time.Time
	Value            float64
	Terms            []string
	SignatoryClient  *string
	SignatoryCompany *string
	Notes            *string
}

// CreateAgreement creates a new agreement
func (s *AgreementService) CreateAgreement(ctx context.Context, input *CreateAgreementInput) (*entity.Agreement, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid agreement type")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	nextNum, err := s.agreementRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	agreement := &entity.Agreement{
		UserID:           input.UserID,
		ClientID:         input.ClientID,
		AgreementNumber:  document.KindAgreement.FormatNumber(nextNum),
		Title:            input.Title,
		Type:             input.Type,
		Status:           enum.AgreementStatusDraft,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Value:            input.Value,
		Terms:            input.Terms,
		SignatoryClient:  input.SignatoryClient,
		SignatoryCompany: input.SignatoryCompany,
		Notes:            input.Notes,
	}

	if err := s.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, err
	}

	return s.agreementRepo.GetByID(ctx, agreement.ID)
}

// GetAgreement retrieves an agreement by ID
func (s *AgreementService) GetAgreement(ctx context.Context, id uuid.UUID) (*entity.Agreement, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, apperror.NewNotFoundError("Agreement")
	}
	return agreement, nil
}

// ListAgreementsInput represents the input for listing agreements
type ListAgreementsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.AgreementStatus
	Type       *enum.AgreementType
	ClientID   *uuid.UUID
}

// ListAgreements lists agreements with filtering, newest first
func (s *AgreementService) ListAgreements(ctx context.Context, input *ListAgreementsInput) (*pagination.PaginatedResult[entity.Agreement], error) {
	params := &repository.AgreementFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		Type:       input.Type,
		ClientID:   input.ClientID,
	}

	agreements, total, err := s.agreementRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(agreements, pag), nil
}

// UpdateAgreementInput represents the input for updating an agreement
type UpdateAgreementInput struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	Title            string
	Type             enum.AgreementType
	StartDate        time.Time
	EndDate          time.Time
	Value            float64
	Terms            []string
	SignatoryClient  *string
	SignatoryCompany *string
	Notes            *string
}

// UpdateAgreement updates an existing agreement
func (s *AgreementService) UpdateAgreement(ctx context.Context, input *UpdateAgreementInput) (*entity.Agreement, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid agreement type")
	}

	agreement, err := s.agreementRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, apperror.NewNotFoundError("Agreement")
	}

	agreement.ClientID = input.ClientID
	agreement.Title = input.Title
	agreement.Type = input.Type
	agreement.StartDate = input.StartDate
	agreement.EndDate = input.EndDate
	agreement.Value = input.Value
	agreement.Terms = input.Terms
	agreement.SignatoryClient = input.SignatoryClient
	agreement.SignatoryCompany = input.SignatoryCompany
	agreement.Notes = input.Notes

	if err := s.agreementRepo.Update(ctx, agreement); err != nil {
		return nil, err
	}

	return s.agreementRepo.GetByID(ctx, agreement.ID)
}

// DeleteAgreement deletes an agreement
func (s *AgreementService) DeleteAgreement(ctx context.Context, id uuid.UUID) error {
	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agreement == nil {
		return apperror.NewNotFoundError("Agreement")
	}

	return s.agreementRepo.Delete(ctx, id)
}

// UpdateAgreementStatus updates the status of an agreement. Marking an
// agreement signed stamps the signing date in the same update.
func (s *AgreementService) UpdateAgreementStatus(ctx context.Context, id uuid.UUID, status enum.AgreementStatus) error {
	if !status.Valid() {
		return apperror.NewBadRequestError("Invalid agreement status")
	}

	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agreement == nil {
		return apperror.NewNotFoundError("Agreement")
	}

	dateField, _ := document.KindAgreement.DateFieldForStatus(status.String())
	return s.agreementRepo.UpdateStatus(ctx, id, status, dateField)
}

// AgreementStats summarizes agreements by status and value
type AgreementStats struct {
	TotalAgreements int64            `json:"total_agreements"`
	SignedValue     float64          `json:"signed_value"`
	ByStatus        map[string]int64 `json:"by_status"`
}

// GetAgreementStats aggregates agreement counts and signed value for a user
func (s *AgreementService) GetAgreementStats(ctx context.Context, userID uuid.UUID) (*AgreementStats, error) {
	rows, err := s.agreementRepo.StatusTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildAgreementStats(rows), nil
}

// BuildAgreementStats folds aggregate rows into an agreement summary.
// Only signed agreements contribute to the value total.
func BuildAgreementStats(rows []repository.StatusTotal) *AgreementStats {
	stats := &AgreementStats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		stats.TotalAgreements += row.Count
		stats.ByStatus[row.Status] = row.Count
		if enum.AgreementStatus(row.Status) == enum.AgreementStatusSigned {
			stats.SignedValue += row.Amount
		}
	}
	return stats
}
