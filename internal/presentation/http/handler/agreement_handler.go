package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/presentation/http/dto/response"
)

// AgreementHandler handles agreement-related HTTP requests
type AgreementHandler struct {
	agreementService *service.AgreementService
	pdfService       *service.DocumentPDFService
}

// NewAgreementHandler creates a new agreement handler
func NewAgreementHandler(agreementService *service.AgreementService, pdfService *service.DocumentPDFService) *AgreementHandler {
	return &AgreementHandler{
		agreementService: agreementService,
		pdfService:       pdfService,
	}
}

// AgreementRequest represents the create/update agreement request body
type AgreementRequest struct {
	ClientID         string   `json:"client_id" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	Type             string   `json:"type" binding:"required"`
	StartDate        string   `json:"start_date" binding:"required"`
	EndDate          string   `json:"end_date" binding:"required"`
	Value            float64  `json:"value"`
	Terms            []string `json:"terms"`
	SignatoryClient  *string  `json:"signatory_client"`
	SignatoryCompany *string  `json:"signatory_company"`
	Notes            *string  `json:"notes"`
}

// List handles listing agreements
// @Summary List Agreements
// @Description Get all agreements with pagination and filtering
// @Tags agreements
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param type query string false "Type filter"
// @Param client_id query string false "Client filter"
// @Success 200 {object} response.APIResponse
// @Router /agreements [get]
func (h *AgreementHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.AgreementStatus
	if s := c.Query("status"); s != "" {
		st := enum.AgreementStatus(s)
		status = &st
	}

	var agreementType *enum.AgreementType
	if t := c.Query("type"); t != "" {
		at := enum.AgreementType(t)
		agreementType = &at
	}

	clientID, err := parseOptionalUUID(strPtr(c.Query("client_id")))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	result, err := h.agreementService.ListAgreements(c.Request.Context(), &service.ListAgreementsInput{
		UserID:     *userID,
		Pagination: parsePaginationParams(c),
		Search:     c.Query("search"),
		Status:     status,
		Type:       agreementType,
		ClientID:   clientID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Agreements retrieved successfully", result)
}

// Get handles getting a single agreement
// @Summary Get Agreement
// @Description Get an agreement by ID
// @Tags agreements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Agreement ID"
// @Success 200 {object} response.APIResponse
// @Router /agreements/{id} [get]
func (h *AgreementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agreement ID")
		return
	}

	agreement, err := h.agreementService.GetAgreement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agreement retrieved successfully", agreement)
}

// Create handles creating an agreement
// @Summary Create Agreement
// @Description Create a new agreement
// @Tags agreements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AgreementRequest true "Agreement data"
// @Success 201 {object} response.APIResponse
// @Router /agreements [post]
func (h *AgreementHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req AgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	agreement, err := h.agreementService.CreateAgreement(c.Request.Context(), &service.CreateAgreementInput{
		UserID:           *userID,
		ClientID:         clientID,
		Title:            req.Title,
		Type:             enum.AgreementType(req.Type),
		StartDate:        startDate,
		EndDate:          endDate,
		Value:            req.Value,
		Terms:            req.Terms,
		SignatoryClient:  req.SignatoryClient,
		SignatoryCompany: req.SignatoryCompany,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Agreement created successfully", agreement)
}

// Update handles updating an agreement
// @Summary Update Agreement
// @Description Update an existing agreement
// @Tags agreements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Agreement ID"
// @Param request body AgreementRequest true "Agreement data"
// @Success 200 {object} response.APIResponse
// @Router /agreements/{id} [put]
func (h *AgreementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agreement ID")
		return
	}

	var req AgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	agreement, err := h.agreementService.UpdateAgreement(c.Request.Context(), &service.UpdateAgreementInput{
		ID:               id,
		ClientID:         clientID,
		Title:            req.Title,
		Type:             enum.AgreementType(req.Type),
		StartDate:        startDate,
		EndDate:          endDate,
		Value:            req.Value,
		Terms:            req.Terms,
		SignatoryClient:  req.SignatoryClient,
		SignatoryCompany: req.SignatoryCompany,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agreement updated successfully", agreement)
}

// UpdateStatus handles agreement status transitions
// @Summary Update Agreement Status
// @Description Update an agreement's status; signing stamps the signed date
// @Tags agreements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Agreement ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /agreements/{id}/status [patch]
func (h *AgreementHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agreement ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.agreementService.UpdateAgreementStatus(c.Request.Context(), id, enum.AgreementStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agreement status updated successfully", nil)
}

// Delete handles deleting an agreement
// @Summary Delete Agreement
// @Description Delete an agreement by ID
// @Tags agreements
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Success 204
// @Router /agreements/{id} [delete]
func (h *AgreementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agreement ID")
		return
	}

	if err := h.agreementService.DeleteAgreement(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Stats handles agreement statistics
// @Summary Agreement Stats
// @Description Get agreement counts by status and signed value
// @Tags agreements
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /agreements/stats [get]
func (h *AgreementHandler) Stats(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stats, err := h.agreementService.GetAgreementStats(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Agreement stats retrieved successfully", stats)
}

// DownloadPDF handles agreement PDF downloads
// @Summary Download Agreement PDF
// @Description Render an agreement as a PDF document
// @Tags agreements
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Agreement ID"
// @Success 200 {file} binary
// @Router /agreements/{id}/pdf [get]
func (h *AgreementHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid agreement ID")
		return
	}

	data, filename, err := h.pdfService.RenderAgreement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}
