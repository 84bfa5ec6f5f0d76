package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanRegistration is a prospective customer's interest in a
// subscription plan. Payment is settled out of band, so the record only
// captures contact details and the chosen plan.
type PlanRegistration struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Phone        string    `gorm:"size:50;not null" json:"phone"`
	CompanyName  *string   `gorm:"size:255" json:"company_name,omitempty"`
	PlanName     string    `gorm:"size:100;not null" json:"plan_name"`
	BillingCycle string    `gorm:"size:20;not null" json:"billing_cycle"`
	PlanPrice    float64   `gorm:"type:decimal(15,2);not null" json:"plan_price"`
	Message      *string   `gorm:"type:text" json:"message,omitempty"`
	Status       string    `gorm:"size:50;default:'pending'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new registration
func (r *PlanRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PlanRegistration model
func (PlanRegistration) TableName() string {
	return "plan_registrations"
}
