package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"tripbuddy/internal/models/db_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/repositories"
	"tripbuddy/pkg/utils"
)

type RatingServiceInterface interface {
	AddRating(ctx context.Context, itineraryID string, rating int, feedback string) (*response_models.Rating, error)
	ListRatings(ctx context.Context, itineraryID string) ([]response_models.Rating, error)
}

type RatingService struct {
	ratingRepo repositories.RatingRepository
}

func NewRatingService(ratingRepo repositories.RatingRepository) RatingServiceInterface {
	return &RatingService{ratingRepo: ratingRepo}
}

func (s *RatingService) AddRating(ctx context.Context, itineraryID string, rating int, feedback string) (*response_models.Rating, error) {
	if itineraryID == "" {
		return nil, fmt.Errorf("%w: itinerary id is required", utils.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", utils.ErrInvalidInput)
	}

	record := &db_models.Rating{
		ID:          uuid.NewString(),
		ItineraryID: itineraryID,
		Rating:      rating,
		Feedback:    feedback,
	}
	if err := s.ratingRepo.SaveRating(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := record.ToResponse()
	return &out, nil
}

func (s *RatingService) ListRatings(ctx context.Context, itineraryID string) ([]response_models.Rating, error) {
	if itineraryID == "" {
		return nil, fmt.Errorf("%w: itinerary id is required", utils.ErrInvalidInput)
	}
	ratings, err := s.ratingRepo.ListRatings(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return ratings, nil
}
