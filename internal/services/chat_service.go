package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/repositories"
	"tripbuddy/pkg/utils"
)

// CurrentChatKey keys the chat log before any itinerary exists.
const CurrentChatKey = "current"

// assistantFallbackText is returned whenever the language model call fails;
// the chat feature is best-effort and never fails the request.
const assistantFallbackText = "I'm experiencing some technical difficulties right now. Please try again in a moment."

const historyWindow = 5

type ChatServiceInterface interface {
	ProcessMessage(ctx context.Context, message string, itineraryID string) (*response_models.ChatTurnResponse, error)
	GetHistory(ctx context.Context, itineraryID string) ([]response_models.ChatMessage, error)
}

type ChatService struct {
	assistant     utils.AssistantClientInterface
	chatRepo      repositories.ChatRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewChatService(
	assistant utils.AssistantClientInterface,
	chatRepo repositories.ChatRepository,
	itineraryRepo repositories.ItineraryRepository,
) ChatServiceInterface {
	return &ChatService{
		assistant:     assistant,
		chatRepo:      chatRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *ChatService) ProcessMessage(ctx context.Context, message string, itineraryID string) (*response_models.ChatTurnResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", utils.ErrInvalidInput)
	}

	chatKey := itineraryID
	if chatKey == "" {
		chatKey = CurrentChatKey
	}

	var itinerary *response_models.Itinerary
	if itineraryID != "" {
		found, err := s.itineraryRepo.GetItinerary(ctx, itineraryID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		itinerary = found
	}

	history, err := s.chatRepo.GetHistory(ctx, chatKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	reply := s.consultAssistant(ctx, message, itinerary, history)

	now := time.Now()
	userMessage := response_models.ChatMessage{
		ID:        fmt.Sprintf("msg_%d_user", now.UnixMilli()),
		Type:      response_models.MessageTypeUser,
		Content:   message,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	if err := s.chatRepo.SaveMessage(ctx, chatKey, userMessage); err != nil {
		return nil, utils.ErrDatabaseError
	}

	assistantMessage := response_models.ChatMessage{
		ID:        fmt.Sprintf("msg_%d_assistant", now.UnixMilli()),
		Type:      response_models.MessageTypeAssistant,
		Content:   reply.Response,
		Timestamp: now.UTC().Format(time.RFC3339),
		Context: &response_models.MessageContext{
			ItineraryModified:   reply.ModifiesItinerary,
			ModificationDetails: reply.Modification,
		},
	}
	if err := s.chatRepo.SaveMessage(ctx, chatKey, assistantMessage); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ChatTurnResponse{
		Message:           assistantMessage,
		ItineraryModified: reply.ModifiesItinerary,
	}, nil
}

// consultAssistant wraps the upstream call with the fail-soft policy: any
// failure degrades to a fixed apology with no itinerary modification.
func (s *ChatService) consultAssistant(
	ctx context.Context,
	message string,
	itinerary *response_models.Itinerary,
	history []response_models.ChatMessage,
) utils.AssistantReply {

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	reply, err := s.assistant.ProcessUserMessage(ctx, message, utils.BuildItineraryContext(itinerary), recent)
	if err != nil || reply == nil {
		log.Printf("Assistant error: %v", err)
		return utils.AssistantReply{
			Response:          assistantFallbackText,
			ModifiesItinerary: false,
		}
	}
	return *reply
}

func (s *ChatService) GetHistory(ctx context.Context, itineraryID string) ([]response_models.ChatMessage, error) {
	if itineraryID == "" {
		itineraryID = CurrentChatKey
	}
	history, err := s.chatRepo.GetHistory(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return history, nil
}
