package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwii/qwii-api/internal/domain/document"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/pkg/apperror"
)

func newShareFixture() (*ShareService, *mockInvoiceRepo, *mockQuotationRepo, *mockAgreementRepo) {
	invoiceRepo := newMockInvoiceRepo()
	quotationRepo := newMockQuotationRepo()
	agreementRepo := newMockAgreementRepo()
	return NewShareService(invoiceRepo, quotationRepo, agreementRepo), invoiceRepo, quotationRepo, agreementRepo
}

func TestResolveInvoiceShareLink(t *testing.T) {
	svc, invoiceRepo, _, _ := newShareFixture()
	invoice := &entity.Invoice{InvoiceNumber: "INV-000007"}
	require.NoError(t, invoiceRepo.Create(context.Background(), invoice))

	doc, err := svc.Resolve(context.Background(), "invoice", invoice.ShareToken.String())

	require.NoError(t, err)
	assert.Equal(t, document.KindInvoice, doc.Type)
	require.NotNil(t, doc.Invoice)
	assert.Equal(t, "INV-000007", doc.Invoice.InvoiceNumber)
	assert.Nil(t, doc.Quotation)
	assert.Nil(t, doc.Agreement)
}

func TestResolveQuotationShareLink(t *testing.T) {
	svc, _, quotationRepo, _ := newShareFixture()
	quotation := &entity.Quotation{QuoteNumber: "QT-000003"}
	require.NoError(t, quotationRepo.Create(context.Background(), quotation))

	doc, err := svc.Resolve(context.Background(), "Quotation", quotation.ShareToken.String())

	require.NoError(t, err)
	assert.Equal(t, document.KindQuotation, doc.Type)
	require.NotNil(t, doc.Quotation)
	assert.Equal(t, "QT-000003", doc.Quotation.QuoteNumber)
}

func TestResolveAgreementShareLink(t *testing.T) {
	svc, _, _, agreementRepo := newShareFixture()
	agreement := &entity.Agreement{AgreementNumber: "AGR-000002", Title: "NDA"}
	require.NoError(t, agreementRepo.Create(context.Background(), agreement))

	doc, err := svc.Resolve(context.Background(), "agreement", agreement.ShareToken.String())

	require.NoError(t, err)
	assert.Equal(t, document.KindAgreement, doc.Type)
	require.NotNil(t, doc.Agreement)
	assert.Equal(t, "NDA", doc.Agreement.Title)
}

func TestResolveUnknownDocumentType(t *testing.T) {
	svc, _, _, _ := newShareFixture()

	_, err := svc.Resolve(context.Background(), "receipt", uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestResolveMalformedToken(t *testing.T) {
	svc, _, _, _ := newShareFixture()

	_, err := svc.Resolve(context.Background(), "invoice", "not-a-uuid")

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Invalid share token", appErr.Message)
}

func TestResolveUnknownToken(t *testing.T) {
	svc, _, _, _ := newShareFixture()

	_, err := svc.Resolve(context.Background(), "invoice", uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestResolveLookupFailure(t *testing.T) {
	svc, _, quotationRepo, _ := newShareFixture()
	quotationRepo.shareError = eris.New("connection refused")

	_, err := svc.Resolve(context.Background(), "quotation", uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
