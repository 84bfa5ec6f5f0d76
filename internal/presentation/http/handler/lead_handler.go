package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/application/leadgen"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/presentation/http/dto/response"
)

// LeadHandler handles lead and lead generation HTTP requests
type LeadHandler struct {
	leadService  *service.LeadService
	orchestrator *leadgen.Orchestrator
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService, orchestrator *leadgen.Orchestrator) *LeadHandler {
	return &LeadHandler{
		leadService:  leadService,
		orchestrator: orchestrator,
	}
}

// GenerateRequest represents the trigger-run request body
type GenerateRequest struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

// LeadSourceRequest represents the create/update lead source request body
type LeadSourceRequest struct {
	Name            string   `json:"name" binding:"required"`
	Industry        string   `json:"industry" binding:"required"`
	TargetLocations []string `json:"target_locations" binding:"required,min=1"`
	SearchTerms     []string `json:"search_terms"`
	DayOfWeek       *int     `json:"day_of_week"`
	Priority        int      `json:"priority"`
	IsActive        bool     `json:"is_active"`
}

// Generate handles triggering a lead generation run
// @Summary Generate Leads
// @Description Run the lead generation pipeline once
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body GenerateRequest false "Run overrides"
// @Success 200 {object} response.APIResponse
// @Router /leads/generate [post]
func (h *LeadHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	started := time.Now()
	result, err := h.orchestrator.Run(c.Request.Context(), leadgen.RunInput{
		Industry: req.Industry,
		Location: req.Location,
		Limit:    req.Limit,
	})
	if err != nil {
		c.JSON(500, gin.H{
			"success":          false,
			"message":          err.Error(),
			"duration_seconds": time.Since(started).Seconds(),
		})
		return
	}

	response.OK(c, "Lead generation completed", result)
}

// List handles listing leads
// @Summary List Leads
// @Description Get all leads with pagination and filtering
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param industry query string false "Industry filter"
// @Success 200 {object} response.APIResponse
// @Router /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	var status *enum.LeadStatus
	if s := c.Query("status"); s != "" {
		st := enum.LeadStatus(s)
		status = &st
	}

	var priority *enum.LeadPriority
	if p := c.Query("priority"); p != "" {
		pr := enum.LeadPriority(p)
		priority = &pr
	}

	result, err := h.leadService.ListLeads(c.Request.Context(), &service.ListLeadsInput{
		Pagination: parsePaginationParams(c),
		Search:     c.Query("search"),
		Status:     status,
		Priority:   priority,
		Industry:   c.Query("industry"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Get handles getting a single lead
// @Summary Get Lead
// @Description Get a lead by ID
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// UpdateStatus handles moving a lead through the sales funnel
// @Summary Update Lead Status
// @Description Update a lead's funnel status
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	lead, err := h.leadService.UpdateLeadStatus(c.Request.Context(), id, enum.LeadStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead status updated successfully", lead)
}

// Delete handles deleting a lead
// @Summary Delete Lead
// @Description Delete a lead by ID
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 204
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListSources handles listing lead sources
// @Summary List Lead Sources
// @Description Get all configured lead sources
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /leads/sources [get]
func (h *LeadHandler) ListSources(c *gin.Context) {
	sources, err := h.leadService.ListSources(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead sources retrieved successfully", sources)
}

// CreateSource handles creating a lead source
// @Summary Create Lead Source
// @Description Create a lead source search profile
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body LeadSourceRequest true "Source data"
// @Success 201 {object} response.APIResponse
// @Router /leads/sources [post]
func (h *LeadHandler) CreateSource(c *gin.Context) {
	var req LeadSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	source, err := h.leadService.CreateSource(c.Request.Context(), &service.CreateSourceInput{
		Name:            req.Name,
		Industry:        req.Industry,
		TargetLocations: req.TargetLocations,
		SearchTerms:     req.SearchTerms,
		DayOfWeek:       req.DayOfWeek,
		Priority:        req.Priority,
		IsActive:        req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead source created successfully", source)
}

// UpdateSource handles updating a lead source
// @Summary Update Lead Source
// @Description Update a lead source search profile
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Param request body LeadSourceRequest true "Source data"
// @Success 200 {object} response.APIResponse
// @Router /leads/sources/{id} [put]
func (h *LeadHandler) UpdateSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid source ID")
		return
	}

	var req LeadSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	source, err := h.leadService.UpdateSource(c.Request.Context(), &service.UpdateSourceInput{
		ID:              id,
		Name:            req.Name,
		Industry:        req.Industry,
		TargetLocations: req.TargetLocations,
		SearchTerms:     req.SearchTerms,
		DayOfWeek:       req.DayOfWeek,
		Priority:        req.Priority,
		IsActive:        req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead source updated successfully", source)
}

// DeleteSource handles deleting a lead source
// @Summary Delete Lead Source
// @Description Delete a lead source by ID
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Source ID"
// @Success 204
// @Router /leads/sources/{id} [delete]
func (h *LeadHandler) DeleteSource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid source ID")
		return
	}

	if err := h.leadService.DeleteSource(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListLogs handles listing recent generation run logs
// @Summary List Generation Logs
// @Description Get recent lead generation run logs, newest first
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum logs to return"
// @Success 200 {object} response.APIResponse
// @Router /leads/logs [get]
func (h *LeadHandler) ListLogs(c *gin.Context) {
	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := h.leadService.ListRunLogs(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Generation logs retrieved successfully", logs)
}
