package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qwii/qwii-api/pkg/pagination"
)

// Shared request-parsing errors surfaced as bad-request messages
var (
	errInvalidClientID = errors.New("Invalid client ID")
	errInvalidOrderID  = errors.New("Invalid order ID")
	errInvalidDate     = errors.New("Invalid date format. Use YYYY-MM-DD")
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// parsePaginationParams reads page/per_page query parameters with defaults
func parsePaginationParams(c *gin.Context) *pagination.PaginationParams {
	params := &pagination.PaginationParams{Page: 1, PerPage: 15}
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			params.Page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := strconv.Atoi(pp); err == nil && parsed > 0 {
			params.PerPage = parsed
		}
	}
	return params
}

// parseDate parses a YYYY-MM-DD date string
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// parseOptionalUUID parses a UUID string pointer, treating empty as absent
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func strPtr(s string) *string {
	return &s
}
