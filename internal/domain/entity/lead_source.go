package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadSource is a configured search profile for the lead generation
// pipeline: an industry paired with the locations to scan, plus
// scheduling metadata used by the source rotation.
type LeadSource struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Industry        string     `gorm:"size:100;not null" json:"industry"`
	TargetLocations []string   `gorm:"serializer:json" json:"target_locations"`
	SearchTerms     []string   `gorm:"serializer:json" json:"search_terms,omitempty"`
	DayOfWeek       *int       `json:"day_of_week,omitempty"`
	Priority        int        `gorm:"default:0" json:"priority"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	TotalLeadsFound int        `gorm:"default:0" json:"total_leads_found"`
	LastUsedDate    *time.Time `gorm:"type:date" json:"last_used_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new lead source
func (s *LeadSource) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeadSource model
func (LeadSource) TableName() string {
	return "lead_sources"
}
