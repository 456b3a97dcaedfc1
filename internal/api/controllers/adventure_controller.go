package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"triptailor/internal/models/request_models"
	"triptailor/internal/services"
	"triptailor/pkg/utils"
)

type AdventureController struct {
	adventureService services.AdventureServiceInterface
}

func NewAdventureController(adventureService services.AdventureServiceInterface) *AdventureController {
	return &AdventureController{
		adventureService: adventureService,
	}
}

// POST /adventures/generate
func (a *AdventureController) GenerateAdventureHandler(c *gin.Context) {
	var req request_models.GenerateAdventureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ConversationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "conversation_id is required")
		return
	}

	result, err := a.adventureService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Adventures generated")
}
