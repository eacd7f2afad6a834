package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type mockChatRepo struct {
	saved   map[string][]response_models.ChatMessage
	getErr  error
	saveErr error
}

func newMockChatRepo() *mockChatRepo {
	return &mockChatRepo{saved: make(map[string][]response_models.ChatMessage)}
}

func (m *mockChatRepo) SaveMessage(_ context.Context, itineraryID string, message response_models.ChatMessage) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[itineraryID] = append(m.saved[itineraryID], message)
	return nil
}

func (m *mockChatRepo) GetHistory(_ context.Context, itineraryID string) ([]response_models.ChatMessage, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.saved[itineraryID], nil
}

var _ repositories.ChatRepository = (*mockChatRepo)(nil)

type mockAssistant struct {
	process func(ctx context.Context, message, itineraryContext string, history []response_models.ChatMessage) (*utils.AssistantReply, error)
}

func (m *mockAssistant) ProcessUserMessage(ctx context.Context, message, itineraryContext string, history []response_models.ChatMessage) (*utils.AssistantReply, error) {
	return m.process(ctx, message, itineraryContext, history)
}

var _ utils.AssistantClientInterface = (*mockAssistant)(nil)

func noItineraryRepo() *mockItineraryRepo {
	return &mockItineraryRepo{
		get: func(context.Context, string) (*response_models.Itinerary, error) { return nil, nil },
	}
}

func TestProcessMessage_Success(t *testing.T) {
	chatRepo := newMockChatRepo()
	assistant := &mockAssistant{
		process: func(_ context.Context, _, _ string, _ []response_models.ChatMessage) (*utils.AssistantReply, error) {
			return &utils.AssistantReply{Response: "Try the sunset cruise on day 3."}, nil
		},
	}
	svc := services.NewChatService(assistant, chatRepo, noItineraryRepo())

	turn, err := svc.ProcessMessage(context.Background(), "Any evening ideas?", "")
	require.NoError(t, err)

	assert.Equal(t, "Try the sunset cruise on day 3.", turn.Message.Content)
	assert.Equal(t, response_models.MessageTypeAssistant, turn.Message.Type)
	assert.False(t, turn.ItineraryModified)

	// Both sides of the exchange are persisted under the sentinel key.
	saved := chatRepo.saved[services.CurrentChatKey]
	require.Len(t, saved, 2)
	assert.Equal(t, response_models.MessageTypeUser, saved[0].Type)
	assert.Equal(t, "Any evening ideas?", saved[0].Content)
	assert.Equal(t, response_models.MessageTypeAssistant, saved[1].Type)
}

func TestProcessMessage_AssistantFailureDegradesGracefully(t *testing.T) {
	chatRepo := newMockChatRepo()
	assistant := &mockAssistant{
		process: func(_ context.Context, _, _ string, _ []response_models.ChatMessage) (*utils.AssistantReply, error) {
			return nil, errors.New("upstream timeout")
		},
	}
	svc := services.NewChatService(assistant, chatRepo, noItineraryRepo())

	turn, err := svc.ProcessMessage(context.Background(), "Make day 2 cheaper", "")
	require.NoError(t, err, "assistant failures never fail the chat request")

	assert.Equal(t, "I'm experiencing some technical difficulties right now. Please try again in a moment.", turn.Message.Content)
	assert.False(t, turn.ItineraryModified)
	require.NotNil(t, turn.Message.Context)
	assert.False(t, turn.Message.Context.ItineraryModified)

	// The failed exchange is still recorded.
	assert.Len(t, chatRepo.saved[services.CurrentChatKey], 2)
}

func TestProcessMessage_ModificationFlagPassesThrough(t *testing.T) {
	chatRepo := newMockChatRepo()
	assistant := &mockAssistant{
		process: func(_ context.Context, _, _ string, _ []response_models.ChatMessage) (*utils.AssistantReply, error) {
			return &utils.AssistantReply{
				Response:          "Swapped the museum for a snorkeling tour.",
				ModifiesItinerary: true,
				Modification:      "day 2 afternoon replaced",
			}, nil
		},
	}
	svc := services.NewChatService(assistant, chatRepo, noItineraryRepo())

	turn, err := svc.ProcessMessage(context.Background(), "Swap the museum", "")
	require.NoError(t, err)

	assert.True(t, turn.ItineraryModified)
	require.NotNil(t, turn.Message.Context)
	assert.Equal(t, "day 2 afternoon replaced", turn.Message.Context.ModificationDetails)
}

func TestProcessMessage_HistoryWindowIsLastFive(t *testing.T) {
	chatRepo := newMockChatRepo()
	for i := 0; i < 8; i++ {
		chatRepo.saved[services.CurrentChatKey] = append(chatRepo.saved[services.CurrentChatKey], response_models.ChatMessage{
			ID:      fmt.Sprintf("msg_%d", i),
			Type:    response_models.MessageTypeUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	var seen []response_models.ChatMessage
	assistant := &mockAssistant{
		process: func(_ context.Context, _, _ string, history []response_models.ChatMessage) (*utils.AssistantReply, error) {
			seen = history
			return &utils.AssistantReply{Response: "ok"}, nil
		},
	}
	svc := services.NewChatService(assistant, chatRepo, noItineraryRepo())

	_, err := svc.ProcessMessage(context.Background(), "latest", "")
	require.NoError(t, err)

	require.Len(t, seen, 5)
	assert.Equal(t, "message 3", seen[0].Content)
	assert.Equal(t, "message 7", seen[4].Content)
}

func TestProcessMessage_ItineraryContextLoaded(t *testing.T) {
	itinerary := storedItinerary()
	itineraryRepo := &mockItineraryRepo{
		get: func(_ context.Context, id string) (*response_models.Itinerary, error) {
			if id == itinerary.ID {
				return itinerary, nil
			}
			return nil, nil
		},
	}
	var receivedContext string
	assistant := &mockAssistant{
		process: func(_ context.Context, _, itineraryContext string, _ []response_models.ChatMessage) (*utils.AssistantReply, error) {
			receivedContext = itineraryContext
			return &utils.AssistantReply{Response: "ok"}, nil
		},
	}
	chatRepo := newMockChatRepo()
	svc := services.NewChatService(assistant, chatRepo, itineraryRepo)

	_, err := svc.ProcessMessage(context.Background(), "What's on day 1?", itinerary.ID)
	require.NoError(t, err)

	assert.Contains(t, receivedContext, "Hawaii")
	assert.NotContains(t, receivedContext, "No itinerary has been created yet.")

	// Messages are keyed by the itinerary, not the sentinel.
	assert.Len(t, chatRepo.saved[itinerary.ID], 2)
	assert.Empty(t, chatRepo.saved[services.CurrentChatKey])
}

func TestProcessMessage_EmptyMessageRejected(t *testing.T) {
	svc := services.NewChatService(&mockAssistant{}, newMockChatRepo(), noItineraryRepo())

	_, err := svc.ProcessMessage(context.Background(), "   ", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetHistory_DefaultsToCurrentKey(t *testing.T) {
	chatRepo := newMockChatRepo()
	chatRepo.saved[services.CurrentChatKey] = []response_models.ChatMessage{
		{ID: "msg_1", Type: response_models.MessageTypeUser, Content: "hello"},
	}
	svc := services.NewChatService(&mockAssistant{}, chatRepo, noItineraryRepo())

	history, err := svc.GetHistory(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Content)
}

func TestGetHistory_RepositoryError(t *testing.T) {
	chatRepo := newMockChatRepo()
	chatRepo.getErr = errors.New("connection reset")
	svc := services.NewChatService(&mockAssistant{}, chatRepo, noItineraryRepo())

	_, err := svc.GetHistory(context.Background(), "itinerary_1")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
