package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// LeadService handles lead, lead source and run log operations outside
// the generation pipeline itself
type LeadService struct {
	leadRepo   repository.LeadRepository
	sourceRepo repository.LeadSourceRepository
	logRepo    repository.LeadGenerationLogRepository
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repository.LeadRepository,
	sourceRepo repository.LeadSourceRepository,
	logRepo repository.LeadGenerationLogRepository,
) *LeadService {
	return &LeadService{
		leadRepo:   leadRepo,
		sourceRepo: sourceRepo,
		logRepo:    logRepo,
	}
}

// ListLeadsInput represents the input for listing leads
type ListLeadsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.LeadStatus
	Priority   *enum.LeadPriority
	Industry   string
}

// ListLeads lists leads with filtering, newest first
func (s *LeadService) ListLeads(ctx context.Context, input *ListLeadsInput) (*pagination.PaginatedResult[entity.Lead], error) {
	params := &repository.LeadFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		Priority:   input.Priority,
		Industry:   input.Industry,
	}

	leads, total, err := s.leadRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// UpdateLeadStatus moves a lead through the sales funnel
func (s *LeadService) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status enum.LeadStatus) (*entity.Lead, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid lead status")
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	lead.Status = status
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// DeleteLead deletes a lead
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}

	return s.leadRepo.Delete(ctx, id)
}

// ListSources lists all lead sources
func (s *LeadService) ListSources(ctx context.Context) ([]entity.LeadSource, error) {
	return s.sourceRepo.List(ctx)
}

// CreateSourceInput represents the input for creating a lead source
type CreateSourceInput struct {
	Name            string
	Industry        string
	TargetLocations []string
	SearchTerms     []string
	DayOfWeek       *int
	Priority        int
	IsActive        bool
}

// CreateSource creates a lead source
func (s *LeadService) CreateSource(ctx context.Context, input *CreateSourceInput) (*entity.LeadSource, error) {
	if input.Name == "" || input.Industry == "" {
		return nil, apperror.NewBadRequestError("Source name and industry are required")
	}
	if len(input.TargetLocations) == 0 {
		return nil, apperror.NewBadRequestError("At least one target location is required")
	}
	if input.DayOfWeek != nil && (*input.DayOfWeek < 0 || *input.DayOfWeek > 6) {
		return nil, apperror.NewBadRequestError("Day of week must be between 0 and 6")
	}

	source := &entity.LeadSource{
		Name:            input.Name,
		Industry:        input.Industry,
		TargetLocations: input.TargetLocations,
		SearchTerms:     input.SearchTerms,
		DayOfWeek:       input.DayOfWeek,
		Priority:        input.Priority,
		IsActive:        input.IsActive,
	}

	if err := s.sourceRepo.Create(ctx, source); err != nil {
		return nil, err
	}
	return source, nil
}

// UpdateSourceInput represents the input for updating a lead source
type UpdateSourceInput struct {
	ID              uuid.UUID
	Name            string
	Industry        string
	TargetLocations []string
	SearchTerms     []string
	DayOfWeek       *int
	Priority        int
	IsActive        bool
}

// UpdateSource updates a lead source
func (s *LeadService) UpdateSource(ctx context.Context, input *UpdateSourceInput) (*entity.LeadSource, error) {
	source, err := s.sourceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, apperror.NewNotFoundError("Lead source")
	}
	if input.DayOfWeek != nil && (*input.DayOfWeek < 0 || *input.DayOfWeek > 6) {
		return nil, apperror.NewBadRequestError("Day of week must be between 0 and 6")
	}

	source.Name = input.Name
	source.Industry = input.Industry
	source.TargetLocations = input.TargetLocations
	source.SearchTerms = input.SearchTerms
	source.DayOfWeek = input.DayOfWeek
	source.Priority = input.Priority
	source.IsActive = input.IsActive

	if err := s.sourceRepo.Update(ctx, source); err != nil {
		return nil, err
	}
	return source, nil
}

// DeleteSource deletes a lead source
func (s *LeadService) DeleteSource(ctx context.Context, id uuid.UUID) error {
	source, err := s.sourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if source == nil {
		return apperror.NewNotFoundError("Lead source")
	}

	return s.sourceRepo.Delete(ctx, id)
}

// ListRunLogs lists recent pipeline run logs, newest first
func (s *LeadService) ListRunLogs(ctx context.Context, limit int) ([]entity.LeadGenerationLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.logRepo.ListRecent(ctx, limit)
}
