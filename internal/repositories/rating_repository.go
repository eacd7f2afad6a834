package repositories

import (
	"context"

	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
	resp "tripbuddy/internal/models/response_models"
)

type RatingRepository interface {
	SaveRating(ctx context.Context, rating *dbm.Rating) error
	ListRatings(ctx context.Context, itineraryID string) ([]resp.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) SaveRating(ctx context.Context, rating *dbm.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) ListRatings(ctx context.Context, itineraryID string) ([]resp.Rating, error) {
	var records []dbm.Rating
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("timestamp ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make([]resp.Rating, 0, len(records))
	for _, record := range records {
		out = append(out, record.ToResponse())
	}
	return out, nil
}
