package services

import (
	"triptailor/internal/models/response_models"
	mem "triptailor/pkg/memcache"
)

type ConversationServiceInterface interface {
	StartConversation() response_models.ConversationResponse
	GetConversation(conversationID string) (response_models.ConversationResponse, error)
}

type ConversationService struct {
	conversations mem.ConversationStore
}

func NewConversationService(conversations mem.ConversationStore) ConversationServiceInterface {
	return &ConversationService{
		conversations: conversations,
	}
}

func (c *ConversationService) StartConversation() response_models.ConversationResponse {
	return c.conversations.Create()
}

func (c *ConversationService) GetConversation(conversationID string) (response_models.ConversationResponse, error) {
	return c.conversations.Get(conversationID)
}
