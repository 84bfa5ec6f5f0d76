package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/domain/repository"
	"github.com/qwii/qwii-api/pkg/apperror"
)

func stringPtr(s string) *string { return &s }

func newInvoiceFixture() (*InvoiceService, *mockInvoiceRepo, *mockInvoiceItemRepo, *entity.Client) {
	invoiceRepo := newMockInvoiceRepo()
	itemRepo := newMockInvoiceItemRepo()
	clientRepo := newMockClientRepo()
	client := clientRepo.add(&entity.Client{Name: "Acme Traders", UserID: uuid.New()})
	return NewInvoiceService(invoiceRepo, itemRepo, clientRepo), invoiceRepo, itemRepo, client
}

func TestCreateInvoicePersistsSuppliedTotals(t *testing.T) {
	svc, _, itemRepo, client := newInvoiceFixture()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:    client.UserID,
		ClientID:  client.ID,
		IssueDate: time.Now(),
		DueDate:   time.Now().AddDate(0, 0, 30),
		Subtotal:  200,
		CGST:      9,
		SGST:      9,
		Total:     218,
		Items: []InvoiceItemInput{
			{Description: "Vinyl stickers", Quantity: 2, Rate: 100, Amount: 200},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "INV-000001", invoice.InvoiceNumber)
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, float64(200), invoice.Subtotal)
	assert.Equal(t, float64(218), invoice.Total)
	assert.NotEqual(t, uuid.Nil, invoice.ShareToken)

	items, err := itemRepo.GetByInvoiceID(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, float64(200), items[0].Amount)
}

func TestCreateInvoiceKeepsAdjustedLineTotal(t *testing.T) {
	svc, _, itemRepo, client := newInvoiceFixture()

	// A negotiated line billed below quantity times rate stays as sent.
	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Subtotal: 250,
		Total:    250,
		Items: []InvoiceItemInput{
			{Description: "Vinyl stickers", Quantity: 3, Rate: 100, Amount: 250},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(250), invoice.Subtotal)
	assert.Equal(t, float64(250), invoice.Total)

	items, err := itemRepo.GetByInvoiceID(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, float64(250), items[0].Amount)
}

func TestCreateInvoiceUnknownClient(t *testing.T) {
	svc, _, _, _ := newInvoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		ClientID: uuid.New(),
		Items:    []InvoiceItemInput{{Description: "Labels", Quantity: 1, Rate: 50}},
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateInvoiceReplacesItems(t *testing.T) {
	svc, _, itemRepo, client := newInvoiceFixture()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Subtotal: 200,
		Total:    200,
		Items: []InvoiceItemInput{
			{Description: "Vinyl stickers", Quantity: 2, Rate: 100, Amount: 200},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateInvoice(context.Background(), &UpdateInvoiceInput{
		ID:       invoice.ID,
		ClientID: client.ID,
		Subtotal: 225,
		IGST:     18,
		Total:    243,
		Items: []InvoiceItemInput{
			{Description: "Die-cut labels", Quantity: 3, Rate: 50, Amount: 150},
			{Description: "Roll labels", Quantity: 1, Rate: 75, Amount: 75},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, float64(225), updated.Subtotal)
	assert.Equal(t, float64(243), updated.Total)
	// The invoice number never changes on update.
	assert.Equal(t, "INV-000001", updated.InvoiceNumber)

	items, err := itemRepo.GetByInvoiceID(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	svc, _, _, client := newInvoiceFixture()

	_, err := svc.UpdateInvoice(context.Background(), &UpdateInvoiceInput{
		ID:       uuid.New(),
		ClientID: client.ID,
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateInvoiceStatusPaidStampsPaymentDate(t *testing.T) {
	svc, invoiceRepo, _, client := newInvoiceFixture()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Items:    []InvoiceItemInput{{Description: "Labels", Quantity: 1, Rate: 50}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusPaid))

	require.Len(t, invoiceRepo.statusUpdates, 1)
	assert.Equal(t, "paid", invoiceRepo.statusUpdates[0].status)
	assert.Equal(t, "payment_date", invoiceRepo.statusUpdates[0].dateField)
}

func TestUpdateInvoiceStatusSentHasNoDateField(t *testing.T) {
	svc, invoiceRepo, _, client := newInvoiceFixture()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Items:    []InvoiceItemInput{{Description: "Labels", Quantity: 1, Rate: 50}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusSent))

	require.Len(t, invoiceRepo.statusUpdates, 1)
	assert.Equal(t, "", invoiceRepo.statusUpdates[0].dateField)
}

func TestUpdateInvoiceStatusInvalid(t *testing.T) {
	svc, _, _, _ := newInvoiceFixture()

	err := svc.UpdateInvoiceStatus(context.Background(), uuid.New(), enum.InvoiceStatus("archived"))

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteInvoiceRemovesItems(t *testing.T) {
	svc, invoiceRepo, itemRepo, client := newInvoiceFixture()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Items:    []InvoiceItemInput{{Description: "Labels", Quantity: 1, Rate: 50}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(context.Background(), invoice.ID))

	assert.Empty(t, invoiceRepo.invoices)
	assert.Empty(t, itemRepo.items)
}

func TestBuildInvoiceStats(t *testing.T) {
	stats := BuildInvoiceStats([]repository.StatusTotal{
		{Status: "draft", Count: 2, Amount: 500},
		{Status: "paid", Count: 1, Amount: 300},
		{Status: "cancelled", Count: 1, Amount: 100},
	})

	assert.Equal(t, int64(4), stats.TotalInvoices)
	assert.Equal(t, float64(300), stats.PaidAmount)
	assert.Equal(t, float64(500), stats.PendingAmount)
	// Cancelled invoices count but contribute no amount.
	assert.Equal(t, float64(800), stats.TotalAmount)
	assert.Equal(t, int64(2), stats.ByStatus["draft"])
	assert.Equal(t, int64(1), stats.ByStatus["cancelled"])
}
