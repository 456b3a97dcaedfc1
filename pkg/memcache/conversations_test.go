package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"triptailor/internal/models/response_models"
	"triptailor/pkg/utils"
)

func TestCreateAndGet(t *testing.T) {
	store := NewConversations()

	created := store.Create()
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Messages)
	assert.Empty(t, created.Adventures)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetUnknownConversation(t *testing.T) {
	store := NewConversations()

	_, err := store.Get("missing")

	assert.ErrorIs(t, err, utils.ErrConversationNotFound)
}

func TestAppendMessagesKeepOrder(t *testing.T) {
	store := NewConversations()
	conv := store.Create()

	require.NoError(t, store.AppendUserMessage(conv.ID, "first"))
	require.NoError(t, store.AppendAssistantMessage(conv.ID, "second"))
	require.NoError(t, store.AppendUserMessage(conv.ID, "third"))

	got, err := store.Get(conv.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, response_models.Message{Role: response_models.RoleUser, Content: "first"}, got.Messages[0])
	assert.Equal(t, response_models.Message{Role: response_models.RoleAssistant, Content: "second"}, got.Messages[1])
	assert.Equal(t, response_models.Message{Role: response_models.RoleUser, Content: "third"}, got.Messages[2])
}

func TestReplaceAdventuresSwapsBatch(t *testing.T) {
	store := NewConversations()
	conv := store.Create()

	first := []response_models.Adventure{{Title: "Old"}}
	require.NoError(t, store.ReplaceAdventures(conv.ID, first))

	second := []response_models.Adventure{{Title: "New A"}, {Title: "New B"}}
	require.NoError(t, store.ReplaceAdventures(conv.ID, second))

	got, err := store.Get(conv.ID)
	require.NoError(t, err)
	require.Len(t, got.Adventures, 2)
	assert.Equal(t, "New A", got.Adventures[0].Title)

	require.NoError(t, store.ReplaceAdventures(conv.ID, nil))
	got, err = store.Get(conv.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Adventures)
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewConversations()
	conv := store.Create()
	require.NoError(t, store.AppendUserMessage(conv.ID, "original"))
	require.NoError(t, store.ReplaceAdventures(conv.ID, []response_models.Adventure{{Title: "original"}}))

	got, err := store.Get(conv.ID)
	require.NoError(t, err)
	got.Messages[0].Content = "tampered"
	got.Adventures[0].Title = "tampered"

	fresh, err := store.Get(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", fresh.Messages[0].Content)
	assert.Equal(t, "original", fresh.Adventures[0].Title)
}

func TestPendingLifecycle(t *testing.T) {
	store := NewConversations()
	conv := store.Create()

	require.NoError(t, store.BeginPending(conv.ID))

	err := store.BeginPending(conv.ID)
	assert.ErrorIs(t, err, utils.ErrConversationBusy)

	got, getErr := store.Get(conv.ID)
	require.NoError(t, getErr)
	assert.True(t, got.Pending)

	store.EndPending(conv.ID)
	require.NoError(t, store.BeginPending(conv.ID))
}

func TestPendingUnknownConversation(t *testing.T) {
	store := NewConversations()

	err := store.BeginPending("missing")
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)

	// EndPending on a missing id is a no-op.
	store.EndPending("missing")
}

func TestMutationsOnUnknownConversation(t *testing.T) {
	store := NewConversations()

	assert.ErrorIs(t, store.AppendUserMessage("missing", "hi"), utils.ErrConversationNotFound)
	assert.ErrorIs(t, store.AppendAssistantMessage("missing", "hi"), utils.ErrConversationNotFound)
	assert.ErrorIs(t, store.ReplaceAdventures("missing", nil), utils.ErrConversationNotFound)
}
