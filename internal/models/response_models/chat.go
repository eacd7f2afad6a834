package response_models

const (
	MessageTypeUser      = "user"
	MessageTypeAssistant = "assistant"
)

type MessageContext struct {
	ItineraryModified   bool   `json:"itineraryModified,omitempty"`
	ModificationDetails string `json:"modificationDetails,omitempty"`
}

type ChatMessage struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"` // user | assistant
	Content   string          `json:"content"`
	Timestamp string          `json:"timestamp"`
	Context   *MessageContext `json:"context,omitempty"`
}

type ChatTurnResponse struct {
	Message           ChatMessage `json:"message"`
	ItineraryModified bool        `json:"itineraryModified"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessage `json:"messages"`
}
