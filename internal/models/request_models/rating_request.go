package request_models

type AddRatingRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback    string `json:"feedback"`
}
