package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	pdfService     *service.DocumentPDFService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, pdfService *service.DocumentPDFService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		pdfService:     pdfService,
	}
}

// InvoiceRequest represents the create/update invoice request body.
// Subtotal and total are taken from the caller as-is.
type InvoiceRequest struct {
	ClientID  string               `json:"client_id" binding:"required"`
	OrderID   *string              `json:"order_id"`
	IssueDate string               `json:"issue_date" binding:"required"`
	DueDate   string               `json:"due_date" binding:"required"`
	Subtotal  float64              `json:"subtotal"`
	CGST      float64              `json:"cgst"`
	SGST      float64              `json:"sgst"`
	IGST      float64              `json:"igst"`
	Total     float64              `json:"total"`
	Notes     *string              `json:"notes"`
	Items     []InvoiceItemRequest `json:"items" binding:"required,min=1"`
}

// InvoiceItemRequest represents a line item in the request
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Rate        float64 `json:"rate" binding:"required"`
	Amount      float64 `json:"amount"`
}

// UpdateStatusRequest represents a status transition request body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List handles listing invoices
// @Summary List Invoices
// @Description Get all invoices with pagination and filtering
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param client_id query string false "Client filter"
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.InvoiceStatus
	if s := c.Query("status"); s != "" {
		st := enum.InvoiceStatus(s)
		status = &st
	}

	clientID, err := parseOptionalUUID(strPtr(c.Query("client_id")))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), &service.ListInvoicesInput{
		UserID:     *userID,
		Pagination: parsePaginationParams(c),
		Search:     c.Query("search"),
		Status:     status,
		ClientID:   clientID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles getting a single invoice
// @Summary Get Invoice
// @Description Get an invoice by ID with its items
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Create handles creating an invoice
// @Summary Create Invoice
// @Description Create a new invoice with line items
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body InvoiceRequest true "Invoice data"
// @Success 201 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := h.buildInput(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	input.UserID = *userID

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Update handles updating an invoice
// @Summary Update Invoice
// @Description Replace an invoice's header fields and line items
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body InvoiceRequest true "Invoice data"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := h.buildInput(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:        id,
		ClientID:  input.ClientID,
		OrderID:   input.OrderID,
		IssueDate: input.IssueDate,
		DueDate:   input.DueDate,
		Subtotal:  input.Subtotal,
		CGST:      input.CGST,
		SGST:      input.SGST,
		IGST:      input.IGST,
		Total:     input.Total,
		Notes:     input.Notes,
		Items:     input.Items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// UpdateStatus handles invoice status transitions
// @Summary Update Invoice Status
// @Description Update an invoice's status; marking paid stamps the payment date
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), id, enum.InvoiceStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", nil)
}

// Delete handles deleting an invoice
// @Summary Delete Invoice
// @Description Delete an invoice and its items
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Stats handles invoice statistics
// @Summary Invoice Stats
// @Description Get invoice counts and amounts by status
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices/stats [get]
func (h *InvoiceHandler) Stats(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stats, err := h.invoiceService.GetInvoiceStats(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice stats retrieved successfully", stats)
}

// DownloadPDF handles invoice PDF downloads
// @Summary Download Invoice PDF
// @Description Render an invoice as a PDF document
// @Tags invoices
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	data, filename, err := h.pdfService.RenderInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}

func (h *InvoiceHandler) buildInput(req *InvoiceRequest) (*service.CreateInvoiceInput, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, errInvalidClientID
	}

	orderID, err := parseOptionalUUID(req.OrderID)
	if err != nil {
		return nil, errInvalidOrderID
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		return nil, errInvalidDate
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, errInvalidDate
	}

	items := make([]service.InvoiceItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}

	return &service.CreateInvoiceInput{
		ClientID:  clientID,
		OrderID:   orderID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Subtotal:  req.Subtotal,
		CGST:      req.CGST,
		SGST:      req.SGST,
		IGST:      req.IGST,
		Total:     req.Total,
		Notes:     req.Notes,
		Items:     items,
	}, nil
}
