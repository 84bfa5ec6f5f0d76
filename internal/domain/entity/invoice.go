package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents a billing document, optionally linked to an order.
// The invoice number is assigned by the persistence layer on create;
// callers never supply it.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	OrderID       *uuid.UUID         `gorm:"type:uuid;index" json:"order_id,omitempty"`
	InvoiceNumber string             `gorm:"size:100;unique;not null" json:"invoice_number"`
	Status        enum.InvoiceStatus `gorm:"size:50;default:'draft'" json:"status"`
	IssueDate     time.Time          `gorm:"type:date;not null" json:"issue_date"`
	DueDate       time.Time          `gorm:"type:date;not null" json:"due_date"`
	Subtotal      float64            `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	CGST          float64            `gorm:"type:decimal(15,2);default:0;column:cgst" json:"cgst"`
	SGST          float64            `gorm:"type:decimal(15,2);default:0;column:sgst" json:"sgst"`
	IGST          float64            `gorm:"type:decimal(15,2);default:0;column:igst" json:"igst"`
	Total         float64            `gorm:"type:decimal(15,2);not null" json:"total"`
	PaymentDate   *time.Time         `gorm:"type:date" json:"payment_date,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	ShareToken    uuid.UUID          `gorm:"type:uuid;uniqueIndex" json:"share_token"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Client Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Order  *ClientOrder  `gorm:"foreignKey:OrderID" json:"-"`
	Items  []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates identifiers before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.ShareToken == uuid.Nil {
		i.ShareToken = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a line item on an invoice
type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Rate        float64   `gorm:"type:decimal(15,2);not null" json:"rate"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
