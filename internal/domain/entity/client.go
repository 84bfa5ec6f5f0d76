package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a business relationship record
type Client struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string     `gorm:"size:255;not null" json:"name"`
	Company           *string    `gorm:"size:255" json:"company,omitempty"`
	Email             *string    `gorm:"size:255" json:"email,omitempty"`
	Phone             *string    `gorm:"size:50" json:"phone,omitempty"`
	Address           *string    `gorm:"type:text" json:"address,omitempty"`
	City              *string    `gorm:"size:100" json:"city,omitempty"`
	State             *string    `gorm:"size:100" json:"state,omitempty"`
	Country           *string    `gorm:"size:100" json:"country,omitempty"`
	GSTNumber         *string    `gorm:"size:50;column:gst_number" json:"gst_number,omitempty"`
	PANNumber         *string    `gorm:"size:50;column:pan_number" json:"pan_number,omitempty"`
	CreditLimit       float64    `gorm:"type:decimal(15,2);default:0" json:"credit_limit"`
	OutstandingAmount float64    `gorm:"type:decimal(15,2);default:0" json:"outstanding_amount"`
	TotalOrders       int        `gorm:"default:0" json:"total_orders"`
	Type              *string    `gorm:"size:50" json:"type,omitempty"`
	Status            string     `gorm:"size:50;default:'active'" json:"status"`
	Notes             *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Relationships
	Orders     []ClientOrder `gorm:"foreignKey:ClientID" json:"-"`
	Invoices   []Invoice     `gorm:"foreignKey:ClientID" json:"-"`
	Quotations []Quotation   `gorm:"foreignKey:ClientID" json:"-"`
	Agreements []Agreement   `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
