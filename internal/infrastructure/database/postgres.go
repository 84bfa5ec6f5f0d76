package database

import (
	"fmt"
	"log"

	"github.com/qwii/qwii-api/internal/config"
	"github.com/qwii/qwii-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Client and order entities
		&entity.Client{},
		&entity.ClientOrder{},
		&entity.OrderItem{},

		// Document entities
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Quotation{},
		&entity.QuotationItem{},
		&entity.Agreement{},

		// Lead generation entities
		&entity.Lead{},
		&entity.LeadSource{},
		&entity.LeadGenerationLog{},

		// System entities
		&entity.PlanRegistration{},
		&entity.AppSetting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default lead sources and settings
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	sources := []entity.LeadSource{
		{
			Name:            "Restaurants - Metro Cities",
			Industry:        "restaurant",
			TargetLocations: []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad"},
			SearchTerms:     []string{"restaurant", "cafe", "cloud kitchen"},
			Priority:        10,
			IsActive:        true,
		},
		{
			Name:            "Retail Stores - West India",
			Industry:        "retail",
			TargetLocations: []string{"Mumbai", "Pune", "Ahmedabad", "Surat"},
			SearchTerms:     []string{"retail store", "supermarket", "boutique"},
			Priority:        8,
			IsActive:        true,
		},
		{
			Name:            "Manufacturers - Industrial Belt",
			Industry:        "manufacturing",
			TargetLocations: []string{"Pune", "Chennai", "Coimbatore", "Rajkot"},
			SearchTerms:     []string{"manufacturer", "factory", "industrial supplier"},
			Priority:        6,
			IsActive:        true,
		},
	}

	for i := range sources {
		var existing entity.LeadSource
		if err := db.Where("name = ?", sources[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&sources[i]).Error; err != nil {
				log.Printf("Warning: failed to create lead source %s: %v", sources[i].Name, err)
			}
		}
	}

	settings := []entity.AppSetting{
		{Key: "enrichment_api_key", Value: "", Description: strPtr("API key for the lead enrichment provider")},
		{Key: "scoring_api_key", Value: "", Description: strPtr("API key for the lead scoring provider")},
		{Key: "maps_api_key", Value: "", Description: strPtr("API key for the business search provider")},
	}

	for i := range settings {
		var existing entity.AppSetting
		if err := db.Where("key = ?", settings[i].Key).First(&existing).Error; err != nil {
			if err := db.Create(&settings[i]).Error; err != nil {
				log.Printf("Warning: failed to create setting %s: %v", settings[i].Key, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

func strPtr(s string) *string {
	return &s
}
