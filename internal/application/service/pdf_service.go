package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/config"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
	"github.com/qwii/qwii-api/pkg/pdf"
)

// DocumentPDFService renders documents as PDFs
type DocumentPDFService struct {
	invoiceRepo   repository.InvoiceRepository
	quotationRepo repository.QuotationRepository
	agreementRepo repository.AgreementRepository
	renderer      *pdf.Renderer
	company       config.CompanyConfig
}

// NewDocumentPDFService creates a new document PDF service
func NewDocumentPDFService(
	invoiceRepo repository.InvoiceRepository,
	quotationRepo repository.QuotationRepository,
	agreementRepo repository.AgreementRepository,
	renderer *pdf.Renderer,
	company config.CompanyConfig,
) *DocumentPDFService {
	return &DocumentPDFService{
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		agreementRepo: agreementRepo,
		renderer:      renderer,
		company:       company,
	}
}

func (s *DocumentPDFService) companyInfo() pdf.CompanyInfo {
	return pdf.CompanyInfo{
		Name:    s.company.Name,
		Tagline: s.company.Tagline,
		Address: s.company.Address,
		Phone:   s.company.Phone,
		Email:   s.company.Email,
		GSTIN:   s.company.GSTIN,
	}
}

// RenderInvoice renders an invoice to PDF and returns the bytes with
// the download filename
func (s *DocumentPDFService) RenderInvoice(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", apperror.NewNotFoundError("Invoice")
	}

	payload := InvoicePayloadFromEntity(invoice, s.companyInfo())
	data, err := s.renderer.RenderInvoice(ctx, payload)
	if err != nil {
		return nil, "", err
	}
	return data, pdf.Filename("Invoice", invoice.InvoiceNumber), nil
}

// RenderQuotation renders a quotation to PDF and returns the bytes with
// the download filename
func (s *DocumentPDFService) RenderQuotation(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if quotation == nil {
		return nil, "", apperror.NewNotFoundError("Quotation")
	}

	payload := QuotationPayloadFromEntity(quotation, s.companyInfo())
	data, err := s.renderer.RenderQuotation(ctx, payload)
	if err != nil {
		return nil, "", err
	}
	return data, pdf.Filename("Quotation", quotation.QuoteNumber), nil
}

// RenderAgreement renders an agreement to PDF and returns the bytes
// with the download filename
func (s *DocumentPDFService) RenderAgreement(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if agreement == nil {
		return nil, "", apperror.NewNotFoundError("Agreement")
	}

	payload := AgreementPayloadFromEntity(agreement, s.companyInfo())
	data, err := s.renderer.RenderAgreement(ctx, payload)
	if err != nil {
		return nil, "", err
	}
	return data, pdf.Filename("Agreement", agreement.AgreementNumber), nil
}

func partyFromClient(client entity.Client) pdf.PartyInfo {
	party := pdf.PartyInfo{Name: client.Name}
	if client.Company != nil {
		party.Company = *client.Company
	}
	if client.Address != nil {
		party.Address = *client.Address
	}
	if client.Email != nil {
		party.Email = *client.Email
	}
	if client.Phone != nil {
		party.Phone = *client.Phone
	}
	if client.GSTNumber != nil {
		party.GSTIN = *client.GSTNumber
	}
	return party
}

// InvoicePayloadFromEntity maps an invoice to its PDF payload
func InvoicePayloadFromEntity(invoice *entity.Invoice, company pdf.CompanyInfo) pdf.InvoicePayload {
	lines := make([]pdf.InvoiceLine, len(invoice.Items))
	for i, item := range invoice.Items {
		lines[i] = pdf.InvoiceLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}

	payload := pdf.InvoicePayload{
		Company:   company,
		Client:    partyFromClient(invoice.Client),
		Number:    invoice.InvoiceNumber,
		Status:    invoice.Status.String(),
		IssueDate: invoice.IssueDate,
		DueDate:   invoice.DueDate,
		Lines:     lines,
		Subtotal:  invoice.Subtotal,
		CGST:      invoice.CGST,
		SGST:      invoice.SGST,
		IGST:      invoice.IGST,
		Total:     invoice.Total,
	}
	if invoice.Notes != nil {
		payload.Notes = *invoice.Notes
	}
	return payload
}

// QuotationPayloadFromEntity maps a quotation to its PDF payload
func QuotationPayloadFromEntity(quotation *entity.Quotation, company pdf.CompanyInfo) pdf.QuotationPayload {
	lines := make([]pdf.QuotationLine, len(quotation.Items))
	for i, item := range quotation.Items {
		lines[i] = pdf.QuotationLine{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
		if item.Description != nil {
			lines[i].Description = *item.Description
		}
	}

	payload := pdf.QuotationPayload{
		Company:    company,
		Client:     partyFromClient(quotation.Client),
		Number:     quotation.QuoteNumber,
		Status:     quotation.Status.String(),
		ValidUntil: quotation.ValidUntil,
		Lines:      lines,
		Subtotal:   quotation.Subtotal,
		Tax:        quotation.Tax,
		Discount:   quotation.Discount,
		Total:      quotation.Total,
	}
	if quotation.Terms != nil {
		payload.Terms = *quotation.Terms
	}
	if quotation.Notes != nil {
		payload.Notes = *quotation.Notes
	}
	return payload
}

// AgreementPayloadFromEntity maps an agreement to its PDF payload
func AgreementPayloadFromEntity(agreement *entity.Agreement, company pdf.CompanyInfo) pdf.AgreementPayload {
	payload := pdf.AgreementPayload{
		Company:    company,
		Client:     partyFromClient(agreement.Client),
		Number:     agreement.AgreementNumber,
		Title:      agreement.Title,
		Type:       agreement.Type.String(),
		Status:     agreement.Status.String(),
		StartDate:  agreement.StartDate,
		EndDate:    agreement.EndDate,
		Value:      agreement.Value,
		Terms:      agreement.Terms,
		SignedDate: agreement.SignedDate,
	}
	if agreement.SignatoryClient != nil {
		payload.SignatoryClient = *agreement.SignatoryClient
	}
	if agreement.SignatoryCompany != nil {
		payload.SignatoryCompany = *agreement.SignatoryCompany
	}
	return payload
}
