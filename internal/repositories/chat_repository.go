package repositories

import (
	"context"

	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
	resp "tripbuddy/internal/models/response_models"
)

type ChatRepository interface {
	SaveMessage(ctx context.Context, itineraryID string, message resp.ChatMessage) error
	GetHistory(ctx context.Context, itineraryID string) ([]resp.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) SaveMessage(ctx context.Context, itineraryID string, message resp.ChatMessage) error {
	record, err := dbm.ChatMessageFromResponse(itineraryID, message)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *chatRepository) GetHistory(ctx context.Context, itineraryID string) ([]resp.ChatMessage, error) {
	var records []dbm.ChatMessage
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("timestamp ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make([]resp.ChatMessage, 0, len(records))
	for _, record := range records {
		msg, err := record.ToResponse()
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}
