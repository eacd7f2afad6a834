package utils

import (
	"context"
	"fmt"
	"strings"

	"tripbuddy/internal/models/response_models"
)

// AssistantReply is the structured output the model is asked to produce for
// every chat turn.
type AssistantReply struct {
	Response          string `json:"response"`
	ModifiesItinerary bool   `json:"modifiesItinerary"`
	Modification      string `json:"modification,omitempty"`
}

// AssistantClientInterface is the opaque text-in/text-out boundary to the
// language model. Callers must treat every error as a degraded-response
// situation, never as a request failure.
type AssistantClientInterface interface {
	ProcessUserMessage(ctx context.Context, message string, itineraryContext string, history []response_models.ChatMessage) (*AssistantReply, error)
}

const assistantSystemPrompt = `You are a helpful trip planning assistant. You can help users modify their itineraries, suggest alternatives, and answer questions about their trip.

Current itinerary context: %s

When responding:
1. Be helpful and enthusiastic about travel
2. If the user asks to modify the itinerary, explain what changes you would make
3. For commands like "add nightlife", "find cheaper restaurants", etc., suggest specific modifications
4. Keep responses concise but informative
5. If you suggest modifications, be specific about what would change

Respond with a JSON object in this format:
{
  "response": "your response text",
  "modifiesItinerary": boolean,
  "modification": "description of specific changes if any"
}`

// BuildItineraryContext summarizes an itinerary for the model prompt.
func BuildItineraryContext(itinerary *response_models.Itinerary) string {
	if itinerary == nil {
		return "No itinerary has been created yet."
	}

	summaries := make([]string, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		summaries = append(summaries, fmt.Sprintf("Day %d: %s, %s, %s (Total: $%.0f)",
			day.DayNumber,
			day.Activities.Morning.Name,
			day.Activities.Afternoon.Name,
			day.Activities.Evening.Name,
			day.TotalCost))
	}

	return fmt.Sprintf("Destination: %s, %d days, %d travelers, Total budget: $%.0f. Activities: %s",
		itinerary.Destination, len(itinerary.Days), itinerary.PartySize, itinerary.TotalCost,
		strings.Join(summaries, "; "))
}

// NewAssistantClient picks an implementation by provider name.
func NewAssistantClient(provider, apiKey, model string) (AssistantClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIAssistantClient(apiKey, model), nil
	case "gemini":
		return NewGeminiAssistantClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
