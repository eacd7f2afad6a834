package db_models

import (
	"time"

	"tripbuddy/internal/models/response_models"
)

type Rating struct {
	ID          string    `gorm:"primaryKey"`
	ItineraryID string    `gorm:"index;not null"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Feedback    string    `gorm:"type:text"`
	Timestamp   time.Time `gorm:"autoCreateTime"`
}

func (Rating) TableName() string { return "ratings" }

func (r *Rating) ToResponse() response_models.Rating {
	return response_models.Rating{
		ID:          r.ID,
		ItineraryID: r.ItineraryID,
		Rating:      r.Rating,
		Feedback:    r.Feedback,
		Timestamp:   r.Timestamp.UTC().Format(time.RFC3339),
	}
}
