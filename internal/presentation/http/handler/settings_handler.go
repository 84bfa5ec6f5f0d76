package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/qwii/qwii-api/internal/application/service"
	"github.com/qwii/qwii-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles application settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingRequest represents the upsert setting request body
type SettingRequest struct {
	Key         string  `json:"key" binding:"required"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

// List handles listing settings
// @Summary List Settings
// @Description Get all application settings with credential values masked
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsService.ListSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Set handles creating or replacing a setting
// @Summary Upsert Setting
// @Description Create or replace an application setting
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SettingRequest true "Setting data"
// @Success 200 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) Set(c *gin.Context) {
	var req SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	setting, err := h.settingsService.SetSetting(c.Request.Context(), req.Key, req.Value, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Setting saved successfully", setting)
}
