package repositories

import (
	"regexp"
	"strings"

	"tripbuddy/internal/models/response_models"
)

// ActivityCatalog maps a destination to its candidate activities. The
// returned slice is never empty and always holds at least three entries;
// the generator indexes into it without re-checking.
type ActivityCatalog interface {
	ActivitiesForDestination(destination string) []response_models.Activity
}

type staticActivityCatalog struct{}

func NewActivityCatalog() ActivityCatalog {
	return &staticActivityCatalog{}
}

var (
	whitespaceRe      = regexp.MustCompile(`\s+`)
	genericDescribeRe = regexp.MustCompile(`the area|local`)
)

func (c *staticActivityCatalog) ActivitiesForDestination(destination string) []response_models.Activity {
	if curated, ok := curatedActivities[destination]; ok && len(curated) > 0 {
		return curated
	}

	// Unknown destination: shape the generic set so ids stay unique across
	// destinations and the text mentions the place.
	normalized := whitespaceRe.ReplaceAllString(strings.ToLower(destination), "_")

	out := make([]response_models.Activity, len(genericActivities))
	for i, activity := range genericActivities {
		activity.ID = normalized + "_" + activity.ID
		if loc := genericDescribeRe.FindStringIndex(activity.Description); loc != nil {
			activity.Description = activity.Description[:loc[0]] + destination + activity.Description[loc[1]:]
		}
		if activity.Location == "Various Locations" {
			activity.Location = destination
		} else {
			activity.Location = destination + " " + activity.Location
		}
		out[i] = activity
	}
	return out
}
