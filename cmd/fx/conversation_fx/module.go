package conversation_fx

import (
	"go.uber.org/fx"
	"triptailor/internal/api/controllers"
	"triptailor/internal/services"
	mem "triptailor/pkg/memcache"
)

var Module = fx.Provide(
	ProvideConversationService,
	ProvideConversationController)

func ProvideConversationService(
	conversations mem.ConversationStore,
) services.ConversationServiceInterface {
	return services.NewConversationService(conversations)
}

func ProvideConversationController(
	conversationService services.ConversationServiceInterface,
) *controllers.ConversationController {
	return controllers.NewConversationController(conversationService)
}
