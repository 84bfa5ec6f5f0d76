package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quotation represents a priced offer to a client. The quote number is
// assigned by the persistence layer on create.
type Quotation struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID     uuid.UUID            `gorm:"type:uuid;not null;index" json:"client_id"`
	QuoteNumber  string               `gorm:"size:100;unique;not null" json:"quote_number"`
	Status       enum.QuotationStatus `gorm:"size:50;default:'draft'" json:"status"`
	ValidUntil   time.Time            `gorm:"type:date;not null" json:"valid_until"`
	Subtotal     float64              `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	Tax          float64              `gorm:"type:decimal(15,2);default:0" json:"tax"`
	Discount     float64              `gorm:"type:decimal(15,2);default:0" json:"discount"`
	Total        float64              `gorm:"type:decimal(15,2);not null" json:"total"`
	AcceptedDate *time.Time           `gorm:"type:date" json:"accepted_date,omitempty"`
	Terms        *string              `gorm:"type:text" json:"terms,omitempty"`
	Notes        *string              `gorm:"type:text" json:"notes,omitempty"`
	ShareToken   uuid.UUID            `gorm:"type:uuid;uniqueIndex" json:"share_token"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`

	// Relationships
	Client Client          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []QuotationItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
}

// BeforeCreate generates identifiers before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.ShareToken == uuid.Nil {
		q.ShareToken = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationItem is a line item on a quotation
type QuotationItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Product     string    `gorm:"size:255;not null" json:"product"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Discount    float64   `gorm:"type:decimal(5,2);default:0" json:"discount"`
	Total       float64   `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Quotation Quotation `gorm:"foreignKey:QuotationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (i *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}
