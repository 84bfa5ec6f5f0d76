package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/document"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
	"github.com/qwii/qwii-api/pkg/logger"
)

// ShareService resolves public share links to their documents. Share
// tokens are unguessable UUIDs carried by every invoice, quotation and
// agreement; no authentication is required to resolve one.
type ShareService struct {
	invoiceRepo   repository.InvoiceRepository
	quotationRepo repository.QuotationRepository
	agreementRepo repository.AgreementRepository
}

// NewShareService creates a new share service
func NewShareService(
	invoiceRepo repository.InvoiceRepository,
	quotationRepo repository.QuotationRepository,
	agreementRepo repository.AgreementRepository,
) *ShareService {
	return &ShareService{
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		agreementRepo: agreementRepo,
	}
}

// SharedDocument is the resolved document behind a share link
type SharedDocument struct {
	Type      document.Kind     `json:"type"`
	Invoice   *entity.Invoice   `json:"invoice,omitempty"`
	Quotation *entity.Quotation `json:"quotation,omitempty"`
	Agreement *entity.Agreement `json:"agreement,omitempty"`
}

// Resolve looks up the document for a share token. An unknown document
// type or malformed token is a bad request; a well-formed token with no
// matching document is not found. Lookup failures surface as bad
// requests with the underlying message.
func (s *ShareService) Resolve(ctx context.Context, docType, token string) (*SharedDocument, error) {
	kind, err := document.ParseKind(docType)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	shareToken, err := uuid.Parse(token)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid share token")
	}

	result := &SharedDocument{Type: kind}

	switch kind {
	case document.KindInvoice:
		invoice, err := s.invoiceRepo.GetByShareToken(ctx, shareToken)
		if err != nil {
			logger.Error().Err(err).Str("type", kind.String()).Msg("share lookup failed")
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if invoice == nil {
			return nil, apperror.NewNotFoundError("Document")
		}
		result.Invoice = invoice

	case document.KindQuotation:
		quotation, err := s.quotationRepo.GetByShareToken(ctx, shareToken)
		if err != nil {
			logger.Error().Err(err).Str("type", kind.String()).Msg("share lookup failed")
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if quotation == nil {
			return nil, apperror.NewNotFoundError("Document")
		}
		result.Quotation = quotation

	case document.KindAgreement:
		agreement, err := s.agreementRepo.GetByShareToken(ctx, shareToken)
		if err != nil {
			logger.Error().Err(err).Str("type", kind.String()).Msg("share lookup failed")
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if agreement == nil {
			return nil, apperror.NewNotFoundError("Document")
		}
		result.Agreement = agreement
	}

	return result, nil
}
