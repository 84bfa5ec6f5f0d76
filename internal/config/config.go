package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	PDF       PDFConfig
	LeadGen   LeadGenConfig
	Company   CompanyConfig
	Payment   PaymentConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// PDFConfig points at the Gotenberg instance used for document rendering
type PDFConfig struct {
	GotenbergURL string
	Timeout      time.Duration
}

// LeadGenConfig holds the knobs for the lead generation pipeline
type LeadGenConfig struct {
	CronSchedule    string
	DefaultLimit    int
	EnrichmentModel string
	ScoringModel    string
	RetryAttempts   int
	RetryBaseDelay  time.Duration
}

// CompanyConfig is the brand block printed on generated documents
type CompanyConfig struct {
	Name    string
	Tagline string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

// PaymentConfig holds the static payment instructions shown to plan registrants
type PaymentConfig struct {
	UPIID       string
	AccountName string
	Note        string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "qwii-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "qwii")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("GOTENBERG_URL", "http://localhost:3001")
	viper.SetDefault("PDF_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LEADGEN_CRON_SCHEDULE", "0 9 * * *")
	viper.SetDefault("LEADGEN_DEFAULT_LIMIT", 7)
	viper.SetDefault("LEADGEN_ENRICHMENT_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("LEADGEN_SCORING_MODEL", "gemini-2.0-flash")
	viper.SetDefault("LEADGEN_RETRY_ATTEMPTS", 3)
	viper.SetDefault("LEADGEN_RETRY_BASE_DELAY_MS", 500)
	viper.SetDefault("COMPANY_NAME", "QWII")
	viper.SetDefault("COMPANY_TAGLINE", "OPTIMIZE VISION")
	viper.SetDefault("COMPANY_ADDRESS", "Mumbai, Maharashtra, India")
	viper.SetDefault("COMPANY_PHONE", "")
	viper.SetDefault("COMPANY_EMAIL", "")
	viper.SetDefault("COMPANY_GSTIN", "")
	viper.SetDefault("PAYMENT_UPI_ID", "qwii@upi")
	viper.SetDefault("PAYMENT_ACCOUNT_NAME", "QWII")
	viper.SetDefault("PAYMENT_NOTE", "Share the payment reference on WhatsApp after transfer")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		PDF: PDFConfig{
			GotenbergURL: viper.GetString("GOTENBERG_URL"),
			Timeout:      time.Duration(viper.GetInt("PDF_TIMEOUT_SECONDS")) * time.Second,
		},
		LeadGen: LeadGenConfig{
			CronSchedule:    viper.GetString("LEADGEN_CRON_SCHEDULE"),
			DefaultLimit:    viper.GetInt("LEADGEN_DEFAULT_LIMIT"),
			EnrichmentModel: viper.GetString("LEADGEN_ENRICHMENT_MODEL"),
			ScoringModel:    viper.GetString("LEADGEN_SCORING_MODEL"),
			RetryAttempts:   viper.GetInt("LEADGEN_RETRY_ATTEMPTS"),
			RetryBaseDelay:  time.Duration(viper.GetInt("LEADGEN_RETRY_BASE_DELAY_MS")) * time.Millisecond,
		},
		Company: CompanyConfig{
			Name:    viper.GetString("COMPANY_NAME"),
			Tagline: viper.GetString("COMPANY_TAGLINE"),
			Address: viper.GetString("COMPANY_ADDRESS"),
			Phone:   viper.GetString("COMPANY_PHONE"),
			Email:   viper.GetString("COMPANY_EMAIL"),
			GSTIN:   viper.GetString("COMPANY_GSTIN"),
		},
		Payment: PaymentConfig{
			UPIID:       viper.GetString("PAYMENT_UPI_ID"),
			AccountName: viper.GetString("PAYMENT_ACCOUNT_NAME"),
			Note:        viper.GetString("PAYMENT_NOTE"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
