package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"triptailor/internal/models/db_models"
	"triptailor/internal/models/request_models"
	"triptailor/internal/models/response_models"
	"triptailor/internal/repositories"
	mem "triptailor/pkg/memcache"
	"triptailor/pkg/utils"
)

type AdventureServiceInterface interface {
	// Submit runs one conversation turn: user message in, adventure batch
	// or failure notice out. Rejected with ErrConversationBusy while a
	// previous turn is still in flight.
	Submit(ctx context.Context, req request_models.GenerateAdventureRequest) (*response_models.TurnResult, error)

	// RequestAdventures makes exactly one generation call and parses the
	// result. No retries, no caching. An empty batch is a valid success.
	RequestAdventures(ctx context.Context, promptText string) ([]response_models.Adventure, error)
}

type AdventureService struct {
	aiClient       utils.AdventureClientInterface
	conversations  mem.ConversationStore
	preferenceRepo repositories.PreferenceRepositoryInterface
}

func NewAdventureService(
	aiClient utils.AdventureClientInterface,
	conversations mem.ConversationStore,
	preferenceRepo repositories.PreferenceRepositoryInterface,
) AdventureServiceInterface {
	return &AdventureService{
		aiClient:       aiClient,
		conversations:  conversations,
		preferenceRepo: preferenceRepo,
	}
}

func (s *AdventureService) Submit(ctx context.Context, req request_models.GenerateAdventureRequest) (*response_models.TurnResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, utils.ErrInvalidInput
	}

	if err := s.conversations.BeginPending(req.ConversationID); err != nil {
		return nil, err
	}
	defer s.conversations.EndPending(req.ConversationID)

	if err := s.conversations.AppendUserMessage(req.ConversationID, message); err != nil {
		return nil, err
	}
	// The previous batch is cleared as soon as a new turn starts.
	if err := s.conversations.ReplaceAdventures(req.ConversationID, nil); err != nil {
		return nil, err
	}

	promptText := ComposePrompt(message, s.loadPreferences(ctx, req.DeviceID))

	adventures, err := s.RequestAdventures(ctx, promptText)
	if err != nil {
		notice := noticeForError(err)
		if appendErr := s.conversations.AppendAssistantMessage(req.ConversationID, notice); appendErr != nil {
			log.Printf("Failed to record failure notice: %v", appendErr)
		}
		return nil, err
	}

	if err := s.conversations.ReplaceAdventures(req.ConversationID, adventures); err != nil {
		return nil, err
	}

	reply := successReply(len(adventures))
	if err := s.conversations.AppendAssistantMessage(req.ConversationID, reply); err != nil {
		return nil, err
	}

	return &response_models.TurnResult{Reply: reply, Adventures: adventures}, nil
}

func (s *AdventureService) RequestAdventures(ctx context.Context, promptText string) ([]response_models.Adventure, error) {
	raw, err := s.aiClient.GenerateAdventures(ctx, promptText)
	if err != nil {
		log.Printf("Adventure generation failed: %v", err)
		return nil, err
	}

	adventures, err := ParseAdventures(raw)
	if err != nil {
		log.Printf("Unparseable adventure payload: %v", err)
		return nil, err
	}
	return adventures, nil
}

// loadPreferences reads the device profile for prompt personalization.
// A storage failure degrades to "no preferences this turn" instead of
// failing the submission.
func (s *AdventureService) loadPreferences(ctx context.Context, deviceID string) *request_models.UserPreferences {
	if deviceID == "" {
		return nil
	}

	pref, err := s.preferenceRepo.GetByDeviceID(ctx, deviceID)
	if err != nil {
		log.Printf("Preference lookup failed for device %s: %v", deviceID, err)
		return nil
	}
	if pref == nil {
		return nil
	}
	return preferencesFromModel(pref)
}

func preferencesFromModel(pref *db_models.Preference) *request_models.UserPreferences {
	return &request_models.UserPreferences{
		Interests:      pref.Interests,
		BudgetRange:    pref.BudgetRange,
		Transportation: pref.Transportation,
		GroupSize:      pref.GroupSize,
		FavoriteAreas:  pref.FavoriteAreas,
	}
}

func successReply(count int) string {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf("I've created %d personalized adventure%s for you! Check them out below:", count, plural)
}

// noticeForError turns a failed turn into the short human-readable notice
// appended to the transcript, so the failure stays visible in the
// conversation rather than only flashing in the UI.
func noticeForError(err error) string {
	switch {
	case errors.Is(err, utils.ErrRateLimited):
		return "Too many requests! Please wait a moment and try again."
	case errors.Is(err, utils.ErrQuotaExhausted):
		return "AI credits depleted. Please add credits to continue."
	default:
		return "Sorry, I couldn't generate adventures. Please try again."
	}
}
