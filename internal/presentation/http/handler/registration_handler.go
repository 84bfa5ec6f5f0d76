package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/presentation/http/dto/response"
)

// RegistrationHandler handles subscription plan registration requests
type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegisterPlanRequest represents the plan registration request body
type RegisterPlanRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required"`
	CompanyName  *string `json:"company_name"`
	PlanName     string  `json:"plan_name" binding:"required"`
	BillingCycle string  `json:"billing_cycle" binding:"required"`
	PlanPrice    float64 `json:"plan_price"`
	Message      *string `json:"message"`
}

// Register handles recording a plan registration
// @Summary Register Plan
// @Description Record a plan registration and return payment instructions
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body RegisterPlanRequest true "Registration data"
// @Success 201 {object} response.APIResponse
// @Router /plan-registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req RegisterPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.registrationService.RegisterPlan(c.Request.Context(), &service.RegisterPlanInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		CompanyName:  req.CompanyName,
		PlanName:     req.PlanName,
		BillingCycle: req.BillingCycle,
		PlanPrice:    req.PlanPrice,
		Message:      req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration recorded successfully", result)
}

// List handles listing plan registrations
// @Summary List Registrations
// @Description Get plan registrations, newest first
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /plan-registrations [get]
func (h *RegistrationHandler) List(c *gin.Context) {
	result, err := h.registrationService.ListRegistrations(c.Request.Context(), parsePaginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Registrations retrieved successfully", result)
}
