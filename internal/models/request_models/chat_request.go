package request_models

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
	// Empty when no itinerary has been created yet; the chat log then keys
	// on the "current" sentinel.
	ItineraryID string `json:"itineraryId"`
}
