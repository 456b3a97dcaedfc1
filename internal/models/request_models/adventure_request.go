package request_models

type GenerateAdventureRequest struct {
	ConversationID string `json:"conversation_id"`
	DeviceID       string `json:"device_id"`
	Message        string `json:"message"`
}
