package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
	resp "tripbuddy/internal/models/response_models"
)

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *resp.Itinerary) error
	GetItinerary(ctx context.Context, id string) (*resp.Itinerary, error)
	UpdateItinerary(ctx context.Context, itinerary *resp.Itinerary) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *resp.Itinerary) error {
	record, err := dbm.ItineraryFromResponse(itinerary)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// GetItinerary returns (nil, nil) when the id is unknown; callers decide
// whether that is a not-found error.
func (r *itineraryRepository) GetItinerary(ctx context.Context, id string) (*resp.Itinerary, error) {
	var record dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.ToResponse()
}

func (r *itineraryRepository) UpdateItinerary(ctx context.Context, itinerary *resp.Itinerary) error {
	record, err := dbm.ItineraryFromResponse(itinerary)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&dbm.Itinerary{}).
		Where("id = ?", itinerary.ID).
		Updates(map[string]interface{}{
			"destination": record.Destination,
			"party_size":  record.PartySize,
			"total_cost":  record.TotalCost,
			"days":        record.Days,
		}).Error
}
