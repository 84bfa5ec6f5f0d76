package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/domain/document"
	"github.com/qwii/qwii-api/internal/presentation/http/dto/response"
)

// ShareHandler handles public share link requests. No authentication is
// required; the unguessable token is the credential.
type ShareHandler struct {
	shareService *service.ShareService
	pdfService   *service.DocumentPDFService
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService *service.ShareService, pdfService *service.DocumentPDFService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		pdfService:   pdfService,
	}
}

// Resolve handles resolving a share link to its document
// @Summary Resolve Shared Document
// @Description Look up the document behind a share token
// @Tags shared
// @Produce json
// @Param type query string true "Document type (invoice, quotation, agreement)"
// @Param token query string true "Share token"
// @Success 200 {object} response.APIResponse
// @Router /shared/documents [get]
func (h *ShareHandler) Resolve(c *gin.Context) {
	doc, err := h.shareService.Resolve(c.Request.Context(), c.Query("type"), c.Query("token"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved successfully", doc)
}

// DownloadPDF handles rendering a shared document as a PDF
// @Summary Download Shared Document PDF
// @Description Render the document behind a share token as a PDF
// @Tags shared
// @Produce application/pdf
// @Param type query string true "Document type (invoice, quotation, agreement)"
// @Param token query string true "Share token"
// @Success 200 {file} binary
// @Router /shared/documents/pdf [get]
func (h *ShareHandler) DownloadPDF(c *gin.Context) {
	doc, err := h.shareService.Resolve(c.Request.Context(), c.Query("type"), c.Query("token"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var data []byte
	var filename string

	switch doc.Type {
	case document.KindInvoice:
		data, filename, err = h.pdfService.RenderInvoice(c.Request.Context(), doc.Invoice.ID)
	case document.KindQuotation:
		data, filename, err = h.pdfService.RenderQuotation(c.Request.Context(), doc.Quotation.ID)
	case document.KindAgreement:
		data, filename, err = h.pdfService.RenderAgreement(c.Request.Context(), doc.Agreement.ID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}
