package utils

import "time"

const tripDateLayout = "2006-01-02"

// TripDayDate renders the calendar date of day dayNumber (1-based) for a
// trip starting at the creation instant. No time-of-day component.
func TripDayDate(createdAt time.Time, dayNumber int) string {
	return createdAt.AddDate(0, 0, dayNumber-1).Format(tripDateLayout)
}
