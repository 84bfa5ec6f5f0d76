package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Agreement represents a contractual record with a client. The agreement
// number is assigned by the persistence layer on create.
type Agreement struct {
	ID                uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID          uuid.UUID            `gorm:"type:uuid;not null;index" json:"client_id"`
	AgreementNumber   string               `gorm:"size:100;unique;not null" json:"agreement_number"`
	Title             string               `gorm:"size:255;not null" json:"title"`
	Type              enum.AgreementType   `gorm:"size:50;default:'sales'" json:"type"`
	Status            enum.AgreementStatus `gorm:"size:50;default:'draft'" json:"status"`
	StartDate         time.Time            `gorm:"type:date;not null" json:"start_date"`
	EndDate           time.Time            `gorm:"type:date;not null" json:"end_date"`
	Value             float64              `gorm:"type:decimal(15,2);default:0" json:"value"`
	Terms             []string             `gorm:"serializer:json" json:"terms,omitempty"`
	SignatoryClient   *string              `gorm:"size:255" json:"signatory_client,omitempty"`
	SignatoryCompany  *string              `gorm:"size:255" json:"signatory_company,omitempty"`
	SignedDate        *time.Time           `gorm:"type:date" json:"signed_date,omitempty"`
	Notes             *string              `gorm:"type:text" json:"notes,omitempty"`
	ShareToken        uuid.UUID            `gorm:"type:uuid;uniqueIndex" json:"share_token"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates identifiers before creating a new agreement
func (a *Agreement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.ShareToken == uuid.Nil {
		a.ShareToken = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Agreement model
func (Agreement) TableName() string {
	return "agreements"
}
