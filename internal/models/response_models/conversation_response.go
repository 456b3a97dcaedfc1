package response_models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a conversation transcript, rendered top to bottom.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ConversationResponse struct {
	ID         string      `json:"id"`
	Messages   []Message   `json:"messages"`
	Adventures []Adventure `json:"adventures"`
	Pending    bool        `json:"pending"`
}
