package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/domain/repository"
)

// statusUpdate captures an UpdateStatus call made against a fake repository.
type statusUpdate struct {
	id        uuid.UUID
	status    string
	dateField string
}

type mockClientRepo struct {
	clients  map[uuid.UUID]*entity.Client
	getError error
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (m *mockClientRepo) add(client *entity.Client) *entity.Client {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	m.clients[client.ID] = client
	return client
}

func (m *mockClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.clients[id], nil
}

func (m *mockClientRepo) Update(ctx context.Context, client *entity.Client) error {
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.clients, id)
	return nil
}

func (m *mockClientRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ClientFilterParams) ([]entity.Client, int64, error) {
	clients := make([]entity.Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, *c)
	}
	return clients, int64(len(clients)), nil
}

type mockInvoiceRepo struct {
	invoices      map[uuid.UUID]*entity.Invoice
	statusUpdates []statusUpdate
	createError   error
	nextNumError  error
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if m.createError != nil {
		return m.createError
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	if invoice.ShareToken == uuid.Nil {
		invoice.ShareToken = uuid.New()
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return m.invoices[id], nil
}

func (m *mockInvoiceRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return m.invoices[id], nil
}

func (m *mockInvoiceRepo) GetByShareToken(ctx context.Context, token uuid.UUID) (*entity.Invoice, error) {
	for _, invoice := range m.invoices {
		if invoice.ShareToken == token {
			return invoice, nil
		}
	}
	return nil, nil
}

func (m *mockInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.invoices, id)
	return nil
}

func (m *mockInvoiceRepo) List(ctx context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	invoices := make([]entity.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		invoices = append(invoices, *inv)
	}
	return invoices, int64(len(invoices)), nil
}

func (m *mockInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus, dateField string) error {
	m.statusUpdates = append(m.statusUpdates, statusUpdate{id: id, status: status.String(), dateField: dateField})
	if invoice, ok := m.invoices[id]; ok {
		invoice.Status = status
	}
	return nil
}

func (m *mockInvoiceRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	if m.nextNumError != nil {
		return 0, m.nextNumError
	}
	return len(m.invoices) + 1, nil
}

func (m *mockInvoiceRepo) StatusTotals(ctx context.Context, userID uuid.UUID) ([]repository.StatusTotal, error) {
	return nil, nil
}

type mockInvoiceItemRepo struct {
	items map[uuid.UUID][]entity.InvoiceItem
}

func newMockInvoiceItemRepo() *mockInvoiceItemRepo {
	return &mockInvoiceItemRepo{items: make(map[uuid.UUID][]entity.InvoiceItem)}
}

func (m *mockInvoiceItemRepo) CreateBatch(ctx context.Context, items []entity.InvoiceItem) error {
	if len(items) > 0 {
		m.items[items[0].InvoiceID] = append(m.items[items[0].InvoiceID], items...)
	}
	return nil
}

func (m *mockInvoiceItemRepo) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	return m.items[invoiceID], nil
}

func (m *mockInvoiceItemRepo) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	delete(m.items, invoiceID)
	return nil
}

type mockQuotationRepo struct {
	quotations    map[uuid.UUID]*entity.Quotation
	statusUpdates []statusUpdate
	shareError    error
}

func newMockQuotationRepo() *mockQuotationRepo {
	return &mockQuotationRepo{quotations: make(map[uuid.UUID]*entity.Quotation)}
}

func (m *mockQuotationRepo) Create(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	if quotation.ShareToken == uuid.Nil {
		quotation.ShareToken = uuid.New()
	}
	m.quotations[quotation.ID] = quotation
	return nil
}

func (m *mockQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return m.quotations[id], nil
}

func (m *mockQuotationRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return m.quotations[id], nil
}

func (m *mockQuotationRepo) GetByShareToken(ctx context.Context, token uuid.UUID) (*entity.Quotation, error) {
	if m.shareError != nil {
		return nil, m.shareError
	}
	for _, quotation := range m.quotations {
		if quotation.ShareToken == token {
			return quotation, nil
		}
	}
	return nil, nil
}

func (m *mockQuotationRepo) Update(ctx context.Context, quotation *entity.Quotation) error {
	m.quotations[quotation.ID] = quotation
	return nil
}

func (m *mockQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.quotations, id)
	return nil
}

func (m *mockQuotationRepo) List(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	quotations := make([]entity.Quotation, 0, len(m.quotations))
	for _, q := range m.quotations {
		quotations = append(quotations, *q)
	}
	return quotations, int64(len(quotations)), nil
}

func (m *mockQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus, dateField string) error {
	m.statusUpdates = append(m.statusUpdates, statusUpdate{id: id, status: status.String(), dateField: dateField})
	if quotation, ok := m.quotations[id]; ok {
		quotation.Status = status
	}
	return nil
}

func (m *mockQuotationRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return len(m.quotations) + 1, nil
}

func (m *mockQuotationRepo) StatusTotals(ctx context.Context, userID uuid.UUID) ([]repository.StatusTotal, error) {
	return nil, nil
}

type mockQuotationItemRepo struct {
	items map[uuid.UUID][]entity.QuotationItem
}

func newMockQuotationItemRepo() *mockQuotationItemRepo {
	return &mockQuotationItemRepo{items: make(map[uuid.UUID][]entity.QuotationItem)}
}

func (m *mockQuotationItemRepo) CreateBatch(ctx context.Context, items []entity.QuotationItem) error {
	if len(items) > 0 {
		m.items[items[0].QuotationID] = append(m.items[items[0].QuotationID], items...)
	}
	return nil
}

func (m *mockQuotationItemRepo) GetByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]entity.QuotationItem, error) {
	return m.items[quotationID], nil
}

func (m *mockQuotationItemRepo) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	delete(m.items, quotationID)
	return nil
}

type mockAgreementRepo struct {
	agreements    map[uuid.UUID]*entity.Agreement
	statusUpdates []statusUpdate
}

func newMockAgreementRepo() *mockAgreementRepo {
	return &mockAgreementRepo{agreements: make(map[uuid.UUID]*entity.Agreement)}
}

func (m *mockAgreementRepo) Create(ctx context.Context, agreement *entity.Agreement) error {
	if agreement.ID == uuid.Nil {
		agreement.ID = uuid.New()
	}
	if agreement.ShareToken == uuid.Nil {
		agreement.ShareToken = uuid.New()
	}
	m.agreements[agreement.ID] = agreement
	return nil
}

func (m *mockAgreementRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Agreement, error) {
	return m.agreements[id], nil
}

func (m *mockAgreementRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Agreement, error) {
	return m.agreements[id], nil
}

func (m *mockAgreementRepo) GetByShareToken(ctx context.Context, token uuid.UUID) (*entity.Agreement, error) {
	for _, agreement := range m.agreements {
		if agreement.ShareToken == token {
			return agreement, nil
		}
	}
	return nil, nil
}

func (m *mockAgreementRepo) Update(ctx context.Context, agreement *entity.Agreement) error {
	m.agreements[agreement.ID] = agreement
	return nil
}

func (m *mockAgreementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.agreements, id)
	return nil
}

func (m *mockAgreementRepo) List(ctx context.Context, userID uuid.UUID, params *repository.AgreementFilterParams) ([]entity.Agreement, int64, error) {
	agreements := make([]entity.Agreement, 0, len(m.agreements))
	for _, a := range m.agreements {
		agreements = append(agreements, *a)
	}
	return agreements, int64(len(agreements)), nil
}

func (m *mockAgreementRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AgreementStatus, dateField string) error {
	m.statusUpdates = append(m.statusUpdates, statusUpdate{id: id, status: status.String(), dateField: dateField})
	if agreement, ok := m.agreements[id]; ok {
		agreement.Status = status
	}
	return nil
}

func (m *mockAgreementRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return len(m.agreements) + 1, nil
}

func (m *mockAgreementRepo) StatusTotals(ctx context.Context, userID uuid.UUID) ([]repository.StatusTotal, error) {
	return nil, nil
}

type mockSettingsRepo struct {
	settings map[string]*entity.AppSetting
	getError error
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{settings: make(map[string]*entity.AppSetting)}
}

func (m *mockSettingsRepo) GetByKey(ctx context.Context, key string) (*entity.AppSetting, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.settings[key], nil
}

func (m *mockSettingsRepo) Upsert(ctx context.Context, setting *entity.AppSetting) error {
	if existing, ok := m.settings[setting.Key]; ok {
		existing.Value = setting.Value
		existing.Description = setting.Description
		existing.UpdatedAt = time.Now()
		return nil
	}
	setting.ID = uuid.New()
	m.settings[setting.Key] = setting
	return nil
}

func (m *mockSettingsRepo) List(ctx context.Context) ([]entity.AppSetting, error) {
	settings := make([]entity.AppSetting, 0, len(m.settings))
	for _, s := range m.settings {
		settings = append(settings, *s)
	}
	return settings, nil
}
