package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadGenerationLog records one pipeline run. A row is opened in the
// running state when the run starts and finalized with counters when it
// completes or fails.
type LeadGenerationLog struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SourceID        *uuid.UUID `gorm:"type:uuid;index" json:"source_id,omitempty"`
	Status          string     `gorm:"size:50;default:'running'" json:"status"`
	SearchQuery     *string    `gorm:"size:500" json:"search_query,omitempty"`
	LeadsScraped    int        `gorm:"default:0" json:"leads_scraped"`
	LeadsSuccessful int        `gorm:"default:0" json:"leads_successful"`
	LeadsFailed     int        `gorm:"default:0" json:"leads_failed"`
	DuplicatesFound int        `gorm:"default:0" json:"duplicates_found"`
	SuccessRate     float64    `gorm:"type:decimal(5,2);default:0" json:"success_rate"`
	MapsCalls       int        `gorm:"default:0" json:"maps_calls"`
	EnrichmentCalls int        `gorm:"default:0" json:"enrichment_calls"`
	ScoringCalls    int        `gorm:"default:0" json:"scoring_calls"`
	ErrorMessage    *string    `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	// Relationships
	Source *LeadSource `gorm:"foreignKey:SourceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new log record
func (l *LeadGenerationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeadGenerationLog model
func (LeadGenerationLog) TableName() string {
	return "lead_generation_logs"
}
