// pkg/mem/conversations.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"triptailor/internal/models/response_models"
	"triptailor/pkg/utils"
)

// ConversationStore holds per-conversation chat state: the append-only
// message log, the current adventure batch, and the pending flag that
// serializes submissions. State is scoped to this process; there is no
// cross-session sharing.
type ConversationStore interface {
	Create() response_models.ConversationResponse

	// Get returns a snapshot copy; mutating it does not affect the store.
	Get(id string) (response_models.ConversationResponse, error)

	AppendUserMessage(id, content string) error
	AppendAssistantMessage(id, content string) error

	// ReplaceAdventures atomically swaps the current batch. The old batch
	// is discarded, never merged.
	ReplaceAdventures(id string, batch []response_models.Adventure) error

	// BeginPending transitions Idle -> Pending. Returns
	// ErrConversationBusy if a request is already in flight.
	BeginPending(id string) error
	EndPending(id string)
}

type conversation struct {
	messages   []response_models.Message
	adventures []response_models.Adventure
	pending    bool
	updatedAt  time.Time
}

type Conversations struct {
	mu   sync.RWMutex
	data map[string]*conversation
}

func NewConversations() *Conversations {
	return &Conversations{
		data: make(map[string]*conversation),
	}
}

func (s *Conversations) Create() response_models.ConversationResponse {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = &conversation{updatedAt: time.Now()}

	return response_models.ConversationResponse{
		ID:         id,
		Messages:   []response_models.Message{},
		Adventures: []response_models.Adventure{},
	}
}

func (s *Conversations) Get(id string) (response_models.ConversationResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.data[id]
	if !ok {
		return response_models.ConversationResponse{}, utils.ErrConversationNotFound
	}
	return snapshot(id, conv), nil
}

func (s *Conversations) AppendUserMessage(id, content string) error {
	return s.appendMessage(id, response_models.RoleUser, content)
}

func (s *Conversations) AppendAssistantMessage(id, content string) error {
	return s.appendMessage(id, response_models.RoleAssistant, content)
}

func (s *Conversations) appendMessage(id, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.data[id]
	if !ok {
		return utils.ErrConversationNotFound
	}
	conv.messages = append(conv.messages, response_models.Message{Role: role, Content: content})
	conv.updatedAt = time.Now()
	return nil
}

func (s *Conversations) ReplaceAdventures(id string, batch []response_models.Adventure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.data[id]
	if !ok {
		return utils.ErrConversationNotFound
	}
	conv.adventures = make([]response_models.Adventure, len(batch))
	copy(conv.adventures, batch)
	conv.updatedAt = time.Now()
	return nil
}

func (s *Conversations) BeginPending(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.data[id]
	if !ok {
		return utils.ErrConversationNotFound
	}
	if conv.pending {
		return utils.ErrConversationBusy
	}
	conv.pending = true
	return nil
}

func (s *Conversations) EndPending(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.data[id]; ok {
		conv.pending = false
	}
}

func snapshot(id string, conv *conversation) response_models.ConversationResponse {
	messages := make([]response_models.Message, len(conv.messages))
	copy(messages, conv.messages)
	adventures := make([]response_models.Adventure, len(conv.adventures))
	copy(adventures, conv.adventures)

	return response_models.ConversationResponse{
		ID:         id,
		Messages:   messages,
		Adventures: adventures,
		Pending:    conv.pending,
	}
}
