package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"triptailor/internal/models/db_models"
	"triptailor/internal/models/request_models"
	"triptailor/internal/models/response_models"
	mem "triptailor/pkg/memcache"
	"triptailor/pkg/utils"
)

type stubAdventureClient struct {
	response string
	err      error
	calls    int
}

func (s *stubAdventureClient) GenerateAdventures(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubPreferenceRepo struct {
	pref *db_models.Preference
	err  error
}

func (s *stubPreferenceRepo) Upsert(ctx context.Context, pref *db_models.Preference) error {
	return s.err
}

func (s *stubPreferenceRepo) GetByDeviceID(ctx context.Context, deviceID string) (*db_models.Preference, error) {
	return s.pref, s.err
}

func newSubmitFixture(client *stubAdventureClient, repo *stubPreferenceRepo) (AdventureServiceInterface, mem.ConversationStore, string) {
	store := mem.NewConversations()
	conv := store.Create()
	return NewAdventureService(client, store, repo), store, conv.ID
}

func TestSubmitSuccessfulTurn(t *testing.T) {
	client := &stubAdventureClient{response: validPayload}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	result, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Plan an afternoon in Steveston",
	})

	require.NoError(t, err)
	require.Len(t, result.Adventures, 1)
	assert.Equal(t, "I've created 1 personalized adventure for you! Check them out below:", result.Reply)

	conv, err := store.Get(convID)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, response_models.RoleUser, conv.Messages[0].Role)
	assert.Equal(t, "Plan an afternoon in Steveston", conv.Messages[0].Content)
	assert.Equal(t, response_models.RoleAssistant, conv.Messages[1].Role)
	assert.Equal(t, result.Reply, conv.Messages[1].Content)
	assert.Len(t, conv.Adventures, 1)
	assert.False(t, conv.Pending)
}

func TestSubmitPluralReply(t *testing.T) {
	raw := `{"adventures": [` + adventureJSON("One") + `,` + adventureJSON("Two") + `]}`
	client := &stubAdventureClient{response: raw}
	service, _, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	result, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Two options please",
	})

	require.NoError(t, err)
	assert.Equal(t, "I've created 2 personalized adventures for you! Check them out below:", result.Reply)
}

func TestSubmitFencedEmptyBatch(t *testing.T) {
	client := &stubAdventureClient{response: "Here you go:\n```json\n{\"adventures\": []}\n```"}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	result, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Anything at all",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Adventures)
	assert.Equal(t, "I've created 0 personalized adventure for you! Check them out below:", result.Reply)

	conv, getErr := store.Get(convID)
	require.NoError(t, getErr)
	assert.Empty(t, conv.Adventures)
}

func TestSubmitRateLimitedAppendsNotice(t *testing.T) {
	client := &stubAdventureClient{err: utils.ErrRateLimited}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Plan something",
	})

	assert.ErrorIs(t, err, utils.ErrRateLimited)

	conv, getErr := store.Get(convID)
	require.NoError(t, getErr)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "Too many requests! Please wait a moment and try again.", conv.Messages[1].Content)
	assert.Empty(t, conv.Adventures)
	assert.False(t, conv.Pending)
}

func TestSubmitQuotaExhaustedNotice(t *testing.T) {
	client := &stubAdventureClient{err: utils.ErrQuotaExhausted}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Plan something",
	})

	assert.ErrorIs(t, err, utils.ErrQuotaExhausted)

	conv, _ := store.Get(convID)
	assert.Equal(t, "AI credits depleted. Please add credits to continue.", conv.Messages[1].Content)
}

func TestSubmitMalformedPayloadNotice(t *testing.T) {
	client := &stubAdventureClient{response: "I refuse to answer in JSON."}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Plan something",
	})

	assert.ErrorIs(t, err, utils.ErrMalformedResponse)

	conv, _ := store.Get(convID)
	assert.Equal(t, "Sorry, I couldn't generate adventures. Please try again.", conv.Messages[1].Content)
}

func TestSubmitClearsPreviousBatchOnFailure(t *testing.T) {
	client := &stubAdventureClient{response: validPayload}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "First turn",
	})
	require.NoError(t, err)

	client.err = utils.ErrUpstream
	_, err = service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Second turn",
	})
	assert.ErrorIs(t, err, utils.ErrUpstream)

	// The old batch does not survive a failed follow-up turn.
	conv, _ := store.Get(convID)
	assert.Empty(t, conv.Adventures)
}

func TestSubmitBlankMessageRejected(t *testing.T) {
	client := &stubAdventureClient{response: validPayload}
	service, _, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "   ",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, client.calls)
}

func TestSubmitUnknownConversation(t *testing.T) {
	client := &stubAdventureClient{response: validPayload}
	service := NewAdventureService(client, mem.NewConversations(), &stubPreferenceRepo{})

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: "nope",
		Message:        "Plan something",
	})

	assert.ErrorIs(t, err, utils.ErrConversationNotFound)
	assert.Zero(t, client.calls)
}

func TestSubmitBusyConversationRejected(t *testing.T) {
	client := &stubAdventureClient{response: validPayload}
	service, store, convID := newSubmitFixture(client, &stubPreferenceRepo{})

	require.NoError(t, store.BeginPending(convID))

	_, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		Message:        "Plan something",
	})

	assert.ErrorIs(t, err, utils.ErrConversationBusy)
	assert.Zero(t, client.calls)

	// The busy rejection leaves no trace in the transcript.
	conv, _ := store.Get(convID)
	assert.Empty(t, conv.Messages)
}

func TestSubmitPreferenceLookupFailureDegrades(t *testing.T) {
	client := &stubAdventureClient{response: validPayload}
	repo := &stubPreferenceRepo{err: errors.New("connection refused")}
	service, _, convID := newSubmitFixture(client, repo)

	result, err := service.Submit(context.Background(), request_models.GenerateAdventureRequest{
		ConversationID: convID,
		DeviceID:       "device-1",
		Message:        "Plan something",
	})

	require.NoError(t, err)
	assert.Len(t, result.Adventures, 1)
}

func adventureJSON(title string) string {
	return `{
      "title": "` + title + `",
      "duration": "2 hours",
      "budget": "$15",
      "description": "A short outing",
      "activities": [],
      "transport": "Walk between stops",
      "totalCost": "$15"
    }`
}
