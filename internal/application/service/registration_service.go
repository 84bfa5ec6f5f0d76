package service

import (
	"context"

	"github.com/qwii/qwii-api/internal/config"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// RegistrationService handles subscription plan registrations. Payment
// is settled out of band over UPI, so registering only records interest
// and returns the transfer instructions.
type RegistrationService struct {
	registrationRepo repository.RegistrationRepository
	payment          config.PaymentConfig
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	payment config.PaymentConfig,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		payment:          payment,
	}
}

// RegisterPlanInput represents the input for a plan registration
type RegisterPlanInput struct {
	FullName     string
	Email        string
	Phone        string
	CompanyName  *string
	PlanName     string
	BillingCycle string
	PlanPrice    float64
	Message      *string
}

// PaymentInstructions tells a registrant how to settle the plan price
type PaymentInstructions struct {
	UPIID       string  `json:"upi_id"`
	AccountName string  `json:"account_name"`
	Amount      float64 `json:"amount"`
	Note        string  `json:"note"`
}

// RegistrationResult is the stored registration plus payment instructions
type RegistrationResult struct {
	Registration *entity.PlanRegistration `json:"registration"`
	Payment      PaymentInstructions      `json:"payment"`
}

// RegisterPlan records a plan registration and returns payment instructions
func (s *RegistrationService) RegisterPlan(ctx context.Context, input *RegisterPlanInput) (*RegistrationResult, error) {
	if input.FullName == "" || input.Email == "" || input.Phone == "" {
		return nil, apperror.NewBadRequestError("Name, email and phone are required")
	}
	if input.PlanName == "" || input.BillingCycle == "" {
		return nil, apperror.NewBadRequestError("Plan name and billing cycle are required")
	}

	registration := &entity.PlanRegistration{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		CompanyName:  input.CompanyName,
		PlanName:     input.PlanName,
		BillingCycle: input.BillingCycle,
		PlanPrice:    input.PlanPrice,
		Message:      input.Message,
		Status:       "pending",
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}

	return &RegistrationResult{
		Registration: registration,
		Payment: PaymentInstructions{
			UPIID:       s.payment.UPIID,
			AccountName: s.payment.AccountName,
			Amount:      input.PlanPrice,
			Note:        s.payment.Note,
		},
	}, nil
}

// ListRegistrations lists plan registrations, newest first
func (s *RegistrationService) ListRegistrations(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PlanRegistration], error) {
	registrations, total, err := s.registrationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(registrations, pag), nil
}
