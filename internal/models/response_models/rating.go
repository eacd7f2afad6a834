package response_models

type Rating struct {
	ID          string `json:"id"`
	ItineraryID string `json:"itineraryId"`
	Rating      int    `json:"rating"`
	Feedback    string `json:"feedback,omitempty"`
	Timestamp   string `json:"timestamp"`
}
