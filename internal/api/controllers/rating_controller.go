package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

type RatingController struct {
	ratingService services.RatingServiceInterface
}

func NewRatingController(ratingService services.RatingServiceInterface) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// AddRating godoc
// @Summary Rate an itinerary
// @Tags Rating
// @Accept json
// @Produce json
// @Param request body request_models.AddRatingRequest true "Rating payload"
// @Success 200 {object} response_models.Rating
// @Failure 400 {object} utils.APIResponse
// @Router /api/rating [post]
func (r *RatingController) AddRating(c *gin.Context) {
	var req request_models.AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID and a rating between 1 and 5 are required")
		return
	}

	rating, err := r.ratingService.AddRating(c.Request.Context(), req.ItineraryID, req.Rating, req.Feedback)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rating, "Rating saved successfully")
}

// ListRatings godoc
// @Summary List ratings for an itinerary
// @Tags Rating
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {array} response_models.Rating
// @Router /api/rating/{itineraryId} [get]
func (r *RatingController) ListRatings(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	ratings, err := r.ratingService.ListRatings(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "Ratings fetched successfully")
}
