package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/qwii/qwii-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Lead is a prospect produced by the lead generation pipeline. The
// GooglePlaceID carries a unique index so the pipeline can skip
// candidates already persisted.
type Lead struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName          string            `gorm:"size:255;not null" json:"company_name"`
	ContactPerson        *string           `gorm:"size:255" json:"contact_person,omitempty"`
	Email                *string           `gorm:"size:255" json:"email,omitempty"`
	Phone                *string           `gorm:"size:50" json:"phone,omitempty"`
	Website              *string           `gorm:"size:255" json:"website,omitempty"`
	Address              *string           `gorm:"type:text" json:"address,omitempty"`
	City                 *string           `gorm:"size:100" json:"city,omitempty"`
	State                *string           `gorm:"size:100" json:"state,omitempty"`
	Industry             *string           `gorm:"size:100" json:"industry,omitempty"`
	GooglePlaceID        string            `gorm:"size:255;uniqueIndex;not null" json:"google_place_id"`
	GoogleRating         *float64          `gorm:"type:decimal(3,1)" json:"google_rating,omitempty"`
	ReviewCount          *int              `json:"review_count,omitempty"`
	PotentialNeeds       []string          `gorm:"serializer:json" json:"potential_sticker_needs,omitempty"`
	EstimatedOrderValue  *float64          `gorm:"type:decimal(15,2)" json:"estimated_order_value,omitempty"`
	SalesPitch           *string           `gorm:"type:text" json:"sales_pitch,omitempty"`
	AIInsights           *string           `gorm:"type:text;column:ai_insights" json:"ai_insights,omitempty"`
	Score                int               `gorm:"default:0" json:"score"`
	Priority             enum.LeadPriority `gorm:"size:20;default:'cold'" json:"priority"`
	ConfidenceLevel      *string           `gorm:"size:20" json:"confidence_level,omitempty"`
	ScoringRationale     *string           `gorm:"type:text" json:"scoring_rationale,omitempty"`
	Status               enum.LeadStatus   `gorm:"size:50;default:'new'" json:"status"`
	Source               string            `gorm:"size:100;not null" json:"source"`
	SearchQuery          *string           `gorm:"size:500" json:"search_query,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
