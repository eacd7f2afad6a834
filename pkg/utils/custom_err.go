package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrDayNotFound          = errors.New("day not found")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrDatabaseError        = errors.New("database error")
)
