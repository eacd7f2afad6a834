package request_models

// CreateTripRequest mirrors the trip form. Transport modes and cuisine
// preferences are captured and stored but not consumed by slot filtering.
type CreateTripRequest struct {
	Budget             float64  `json:"budget" binding:"required,gte=100"`
	TripLength         int      `json:"tripLength" binding:"required,min=1,max=30"`
	PartySize          int      `json:"partySize" binding:"required,min=1,max=20"`
	Destination        string   `json:"destination" binding:"required"`
	TransportModes     []string `json:"transportModes" binding:"omitempty,dive,oneof=walking driving public rideshare"`
	CuisinePreferences []string `json:"cuisinePreferences" binding:"omitempty,dive,oneof=local italian asian seafood vegetarian mediterranean mexican american"`
}
