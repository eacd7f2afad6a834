package request_models

import "tripbuddy/internal/models/response_models"

type SwapAlternativesRequest struct {
	Destination     string                   `json:"destination" binding:"required"`
	CurrentActivity response_models.Activity `json:"currentActivity" binding:"required"`
}

type ApplySwapRequest struct {
	ItineraryID string                   `json:"itineraryId" binding:"required"`
	DayNumber   int                      `json:"dayNumber" binding:"required,min=1"`
	TimeSlot    string                   `json:"timeSlot" binding:"required,oneof=morning afternoon evening"`
	NewActivity response_models.Activity `json:"newActivity" binding:"required"`
}
