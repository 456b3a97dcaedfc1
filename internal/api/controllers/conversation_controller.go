package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"triptailor/internal/services"
	"triptailor/pkg/utils"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{
		conversationService: conversationService,
	}
}

// POST /conversations
func (cc *ConversationController) StartConversationHandler(c *gin.Context) {
	conv := cc.conversationService.StartConversation()
	utils.RespondSuccess(c, conv, "Conversation started")
}

// GET /conversations/:id
func (cc *ConversationController) GetConversationHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "conversation id is required")
		return
	}

	conv, err := cc.conversationService.GetConversation(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conv, "Conversation fetched")
}
