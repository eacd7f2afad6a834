package db_models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"tripbuddy/internal/models/response_models"
)

// Itinerary persists the whole day plan as a jsonb document; days are only
// ever read and written as a unit.
type Itinerary struct {
	ID          string         `gorm:"primaryKey"`
	Destination string         `gorm:"not null"`
	PartySize   int            `gorm:"not null"`
	TotalCost   float64        `gorm:"not null"`
	Days        datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Itinerary) TableName() string { return "itineraries" }

func (i *Itinerary) ToResponse() (*response_models.Itinerary, error) {
	var days []response_models.Day
	if len(i.Days) > 0 {
		if err := json.Unmarshal(i.Days, &days); err != nil {
			return nil, err
		}
	}
	return &response_models.Itinerary{
		ID:          i.ID,
		Destination: i.Destination,
		PartySize:   i.PartySize,
		TotalCost:   i.TotalCost,
		CreatedAt:   i.CreatedAt.UTC().Format(time.RFC3339),
		Days:        days,
	}, nil
}

func ItineraryFromResponse(in *response_models.Itinerary) (*Itinerary, error) {
	days, err := json.Marshal(in.Days)
	if err != nil {
		return nil, err
	}
	return &Itinerary{
		ID:          in.ID,
		Destination: in.Destination,
		PartySize:   in.PartySize,
		TotalCost:   in.TotalCost,
		Days:        days,
	}, nil
}
