package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type TripController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewTripController(itineraryService services.ItineraryServiceInterface) *TripController {
	return &TripController{
		itineraryService: itineraryService,
	}
}

// CreateTrip godoc
// @Summary Create a trip itinerary
// @Description Generate a day-by-day itinerary from budget, trip length, party size, and destination
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip form"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Router /api/trip/create [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip request: "+err.Error())
		return
	}

	itinerary, err := t.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created successfully")
}

// GetItinerary godoc
// @Summary Get an itinerary by ID
// @Tags Trip
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.Itinerary
// @Failure 404 {object} utils.APIResponse
// @Router /api/trip/{itineraryId} [get]
func (t *TripController) GetItinerary(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := t.itineraryService.GetItinerary(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// GetSwapAlternatives godoc
// @Summary Get swap alternatives for an activity
// @Description Up to 5 same-category activities within cost and duration tolerance of the current one
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SwapAlternativesRequest true "Current activity and destination"
// @Success 200 {object} response_models.SwapAlternativesResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trip/swap-alternatives [post]
func (t *TripController) GetSwapAlternatives(c *gin.Context) {
	var req request_models.SwapAlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentActivity.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination and current activity are required")
		return
	}

	alternatives := t.itineraryService.SwapAlternatives(req.CurrentActivity, req.Destination)

	utils.RespondSuccess(c, response_models.SwapAlternativesResponse{Alternatives: alternatives}, "Alternatives fetched successfully")
}

// SwapActivity godoc
// @Summary Swap one activity in an itinerary
// @Description Replace a time slot's activity and recompute day and itinerary totals
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.ApplySwapRequest true "Itinerary ID, day number, time slot, replacement activity"
// @Success 200 {object} response_models.SwapResult
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trip/swap [post]
func (t *TripController) SwapActivity(c *gin.Context) {
	var req request_models.ApplySwapRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewActivity.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID, day number, time slot, and new activity are required")
		return
	}

	result, err := t.itineraryService.ApplySwap(c.Request.Context(), req.ItineraryID, req.DayNumber, req.TimeSlot, req.NewActivity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Activity swapped successfully")
}
