package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientOrder is a client's purchase order. Orders are referenced by
// invoices but have no direct management surface in this API.
type ClientOrder struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"client_id"`
	OrderNumber      string     `gorm:"size:100;unique;not null" json:"order_number"`
	OrderDate        time.Time  `gorm:"type:date;not null" json:"order_date"`
	ExpectedDelivery *time.Time `gorm:"type:date" json:"expected_delivery,omitempty"`
	ActualDelivery   *time.Time `gorm:"type:date" json:"actual_delivery,omitempty"`
	Status           string     `gorm:"size:50;default:'pending'" json:"status"`
	Priority         *string    `gorm:"size:50" json:"priority,omitempty"`
	Subtotal         float64    `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	TaxAmount        float64    `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	DiscountAmount   float64    `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TotalAmount      float64    `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	PaidAmount       float64    `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	PaymentStatus    *string    `gorm:"size:50" json:"payment_status,omitempty"`
	Notes            *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Client Client      `gorm:"foreignKey:ClientID" json:"-"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *ClientOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ClientOrder model
func (ClientOrder) TableName() string {
	return "client_orders"
}

// OrderItem is a line item on a client order
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	SKU         *string   `gorm:"size:100" json:"sku,omitempty"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Unit        *string   `gorm:"size:50" json:"unit,omitempty"`
	UnitPrice   float64   `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TotalPrice  float64   `gorm:"type:decimal(15,2);not null" json:"total_price"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Order ClientOrder `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
