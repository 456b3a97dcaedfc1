package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"triptailor/internal/models/request_models"
	"triptailor/internal/services"
	"triptailor/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
	}
}

// PUT /preferences
func (p *PreferenceController) SavePreferencesHandler(c *gin.Context) {
	var req request_models.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.preferenceService.SavePreferences(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"device_id": req.DeviceID}, "Preferences saved")
}

// GET /preferences/:deviceId
func (p *PreferenceController) GetPreferencesHandler(c *gin.Context) {
	deviceID := c.Param("deviceId")

	prefs, err := p.preferenceService.GetPreferences(c.Request.Context(), deviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences fetched")
}
