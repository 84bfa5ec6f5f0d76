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

type mockLeadRepo struct {
	leads map[uuid.UUID]*entity.Lead
}

func newMockLeadRepo() *mockLeadRepo {
	return &mockLeadRepo{leads: make(map[uuid.UUID]*entity.Lead)}
}

func (m *mockLeadRepo) add(lead *entity.Lead) *entity.Lead {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	m.leads[lead.ID] = lead
	return lead
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	m.add(lead)
	return nil
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	return m.leads[id], nil
}

func (m *mockLeadRepo) GetByPlaceID(ctx context.Context, placeID string) (*entity.Lead, error) {
	for _, lead := range m.leads {
		if lead.GooglePlaceID == placeID {
			return lead, nil
		}
	}
	return nil, nil
}

func (m *mockLeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	m.leads[lead.ID] = lead
	return nil
}

func (m *mockLeadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.leads, id)
	return nil
}

func (m *mockLeadRepo) List(ctx context.Context, params *repository.LeadFilterParams) ([]entity.Lead, int64, error) {
	leads := make([]entity.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		leads = append(leads, *l)
	}
	return leads, int64(len(leads)), nil
}

type mockLeadSourceRepo struct {
	sources map[uuid.UUID]*entity.LeadSource
}

func newMockLeadSourceRepo() *mockLeadSourceRepo {
	return &mockLeadSourceRepo{sources: make(map[uuid.UUID]*entity.LeadSource)}
}

func (m *mockLeadSourceRepo) Create(ctx context.Context, source *entity.LeadSource) error {
	if source.ID == uuid.Nil {
		source.ID = uuid.New()
	}
	m.sources[source.ID] = source
	return nil
}

func (m *mockLeadSourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LeadSource, error) {
	return m.sources[id], nil
}

func (m *mockLeadSourceRepo) Update(ctx context.Context, source *entity.LeadSource) error {
	m.sources[source.ID] = source
	return nil
}

func (m *mockLeadSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.sources, id)
	return nil
}

func (m *mockLeadSourceRepo) List(ctx context.Context) ([]entity.LeadSource, error) {
	sources := make([]entity.LeadSource, 0, len(m.sources))
	for _, s := range m.sources {
		sources = append(sources, *s)
	}
	return sources, nil
}

func (m *mockLeadSourceRepo) ListActive(ctx context.Context) ([]entity.LeadSource, error) {
	var active []entity.LeadSource
	for _, s := range m.sources {
		if s.IsActive {
			active = append(active, *s)
		}
	}
	return active, nil
}

func (m *mockLeadSourceRepo) FindByIndustryLocation(ctx context.Context, industry, location string) (*entity.LeadSource, error) {
	return nil, nil
}

func (m *mockLeadSourceRepo) RecordUsage(ctx context.Context, id uuid.UUID, leadsFound int, usedAt time.Time) error {
	return nil
}

type mockLeadLogRepo struct {
	logs          []entity.LeadGenerationLog
	lastListLimit int
}

func (m *mockLeadLogRepo) Create(ctx context.Context, log *entity.LeadGenerationLog) error {
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockLeadLogRepo) Update(ctx context.Context, log *entity.LeadGenerationLog) error {
	return nil
}

func (m *mockLeadLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LeadGenerationLog, error) {
	return nil, nil
}

func (m *mockLeadLogRepo) ListRecent(ctx context.Context, limit int) ([]entity.LeadGenerationLog, error) {
	m.lastListLimit = limit
	return m.logs, nil
}

func newLeadFixture() (*LeadService, *mockLeadRepo, *mockLeadSourceRepo, *mockLeadLogRepo) {
	leadRepo := newMockLeadRepo()
	sourceRepo := newMockLeadSourceRepo()
	logRepo := &mockLeadLogRepo{}
	return NewLeadService(leadRepo, sourceRepo, logRepo), leadRepo, sourceRepo, logRepo
}

func TestUpdateLeadStatus(t *testing.T) {
	svc, leadRepo, _, _ := newLeadFixture()
	lead := leadRepo.add(&entity.Lead{CompanyName: "Spice Garden", Status: enum.LeadStatusNew})

	updated, err := svc.UpdateLeadStatus(context.Background(), lead.ID, enum.LeadStatusContacted)

	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusContacted, updated.Status)
	assert.Equal(t, enum.LeadStatusContacted, leadRepo.leads[lead.ID].Status)
}

func TestUpdateLeadStatusInvalid(t *testing.T) {
	svc, _, _, _ := newLeadFixture()

	_, err := svc.UpdateLeadStatus(context.Background(), uuid.New(), enum.LeadStatus("archived"))

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateLeadStatusNotFound(t *testing.T) {
	svc, _, _, _ := newLeadFixture()

	_, err := svc.UpdateLeadStatus(context.Background(), uuid.New(), enum.LeadStatusQualified)

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetLeadNotFound(t *testing.T) {
	svc, _, _, _ := newLeadFixture()

	_, err := svc.GetLead(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteLead(t *testing.T) {
	svc, leadRepo, _, _ := newLeadFixture()
	lead := leadRepo.add(&entity.Lead{CompanyName: "Spice Garden"})

	require.NoError(t, svc.DeleteLead(context.Background(), lead.ID))
	assert.Empty(t, leadRepo.leads)

	err := svc.DeleteLead(context.Background(), lead.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateSourceValidation(t *testing.T) {
	svc, _, _, _ := newLeadFixture()
	badDay := 7

	tests := []struct {
		name  string
		input CreateSourceInput
	}{
		{"missing name", CreateSourceInput{Industry: "retail", TargetLocations: []string{"Delhi"}}},
		{"missing industry", CreateSourceInput{Name: "Retail Delhi", TargetLocations: []string{"Delhi"}}},
		{"no locations", CreateSourceInput{Name: "Retail Delhi", Industry: "retail"}},
		{"day of week out of range", CreateSourceInput{Name: "Retail Delhi", Industry: "retail", TargetLocations: []string{"Delhi"}, DayOfWeek: &badDay}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSource(context.Background(), &tt.input)
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}

func TestCreateSource(t *testing.T) {
	svc, _, sourceRepo, _ := newLeadFixture()
	monday := 1

	source, err := svc.CreateSource(context.Background(), &CreateSourceInput{
		Name:            "Restaurants Mumbai",
		Industry:        "restaurant",
		TargetLocations: []string{"Mumbai", "Pune"},
		SearchTerms:     []string{"restaurant", "cafe"},
		DayOfWeek:       &monday,
		Priority:        2,
		IsActive:        true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, source.ID)
	assert.Len(t, sourceRepo.sources, 1)
}

func TestUpdateSourceNotFound(t *testing.T) {
	svc, _, _, _ := newLeadFixture()

	_, err := svc.UpdateSource(context.Background(), &UpdateSourceInput{
		ID:              uuid.New(),
		Name:            "Retail Delhi",
		Industry:        "retail",
		TargetLocations: []string{"Delhi"},
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListRunLogsDefaultLimit(t *testing.T) {
	svc, _, _, logRepo := newLeadFixture()

	_, err := svc.ListRunLogs(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, logRepo.lastListLimit)

	_, err = svc.ListRunLogs(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, logRepo.lastListLimit)
}
