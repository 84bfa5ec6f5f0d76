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

func newAgreementFixture() (*AgreementService, *mockAgreementRepo, *entity.Client) {
	agreementRepo := newMockAgreementRepo()
	clientRepo := newMockClientRepo()
	client := clientRepo.add(&entity.Client{Name: "Acme Traders", UserID: uuid.New()})
	return NewAgreementService(agreementRepo, clientRepo), agreementRepo, client
}

func TestCreateAgreement(t *testing.T) {
	svc, _, client := newAgreementFixture()

	agreement, err := svc.CreateAgreement(context.Background(), &CreateAgreementInput{
		UserID:    client.UserID,
		ClientID:  client.ID,
		Title:     "Annual supply contract",
		Type:      enum.AgreementTypeSupply,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(1, 0, 0),
		Value:     120000,
		Terms:     []string{"Net 30 payment", "Quarterly review"},
	})

	require.NoError(t, err)
	assert.Equal(t, "AGR-000001", agreement.AgreementNumber)
	assert.Equal(t, enum.AgreementStatusDraft, agreement.Status)
	assert.Equal(t, enum.AgreementTypeSupply, agreement.Type)
	assert.NotEqual(t, uuid.Nil, agreement.ShareToken)
}

func TestCreateAgreementInvalidType(t *testing.T) {
	svc, _, client := newAgreementFixture()

	_, err := svc.CreateAgreement(context.Background(), &CreateAgreementInput{
		ClientID: client.ID,
		Title:    "Contract",
		Type:     enum.AgreementType("lease"),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateAgreementUnknownClient(t *testing.T) {
	svc, _, _ := newAgreementFixture()

	_, err := svc.CreateAgreement(context.Background(), &CreateAgreementInput{
		ClientID: uuid.New(),
		Title:    "Contract",
		Type:     enum.AgreementTypeSales,
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateAgreement(t *testing.T) {
	svc, _, client := newAgreementFixture()

	agreement, err := svc.CreateAgreement(context.Background(), &CreateAgreementInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Title:    "Annual supply contract",
		Type:     enum.AgreementTypeSupply,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAgreement(context.Background(), &UpdateAgreementInput{
		ID:       agreement.ID,
		ClientID: client.ID,
		Title:    "Biannual supply contract",
		Type:     enum.AgreementTypeService,
		Value:    60000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Biannual supply contract", updated.Title)
	assert.Equal(t, enum.AgreementTypeService, updated.Type)
	assert.Equal(t, float64(60000), updated.Value)
	assert.Equal(t, "AGR-000001", updated.AgreementNumber)
}

func TestUpdateAgreementStatusSignedStampsDate(t *testing.T) {
	svc, agreementRepo, client := newAgreementFixture()

	agreement, err := svc.CreateAgreement(context.Background(), &CreateAgreementInput{
		UserID:   client.UserID,
		ClientID: client.ID,
		Title:    "NDA",
		Type:     enum.AgreementTypeNDA,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAgreementStatus(context.Background(), agreement.ID, enum.AgreementStatusSigned))

	require.Len(t, agreementRepo.statusUpdates, 1)
	assert.Equal(t, "signed", agreementRepo.statusUpdates[0].status)
	assert.Equal(t, "signed_date", agreementRepo.statusUpdates[0].dateField)
}

func TestUpdateAgreementStatusInvalid(t *testing.T) {
	svc, _, _ := newAgreementFixture()

	err := svc.UpdateAgreementStatus(context.Background(), uuid.New(), enum.AgreementStatus("void"))

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteAgreementNotFound(t *testing.T) {
	svc, _, _ := newAgreementFixture()

	err := svc.DeleteAgreement(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestBuildAgreementStats(t *testing.T) {
	stats := BuildAgreementStats([]repository.StatusTotal{
		{Status: "draft", Count: 2, Amount: 50000},
		{Status: "signed", Count: 3, Amount: 300000},
		{Status: "terminated", Count: 1, Amount: 80000},
	})

	assert.Equal(t, int64(6), stats.TotalAgreements)
	// Only signed agreements contribute to the value total.
	assert.Equal(t, float64(300000), stats.SignedValue)
	assert.Equal(t, int64(3), stats.ByStatus["signed"])
}
