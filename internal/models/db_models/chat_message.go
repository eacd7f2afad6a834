package db_models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"tripbuddy/internal/models/response_models"
)

// ChatMessage is an append-only log entry keyed by itinerary id, or the
// "current" sentinel when no itinerary exists yet.
type ChatMessage struct {
	ID          string         `gorm:"primaryKey"`
	ItineraryID string         `gorm:"index;not null"`
	Type        string         `gorm:"not null"` // user | assistant
	Content     string         `gorm:"type:text;not null"`
	Context     datatypes.JSON `gorm:"type:jsonb"`
	Timestamp   time.Time      `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

func (m *ChatMessage) ToResponse() (response_models.ChatMessage, error) {
	out := response_models.ChatMessage{
		ID:        m.ID,
		Type:      m.Type,
		Content:   m.Content,
		Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
	}
	if len(m.Context) > 0 {
		var ctx response_models.MessageContext
		if err := json.Unmarshal(m.Context, &ctx); err != nil {
			return out, err
		}
		out.Context = &ctx
	}
	return out, nil
}

func ChatMessageFromResponse(itineraryID string, in response_models.ChatMessage) (*ChatMessage, error) {
	rec := &ChatMessage{
		ID:          in.ID,
		ItineraryID: itineraryID,
		Type:        in.Type,
		Content:     in.Content,
	}
	if in.Context != nil {
		ctx, err := json.Marshal(in.Context)
		if err != nil {
			return nil, err
		}
		rec.Context = ctx
	}
	return rec, nil
}
