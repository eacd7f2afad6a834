package response_models

// Activity is a read-only catalog entry. Catalog data never changes after
// load, so activities are passed around by value.
type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Duration    float64 `json:"duration"` // hours
	Category    string  `json:"category"` // dining | activity | transport | accommodation
	Subcategory string  `json:"subcategory"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Location    string  `json:"location,omitempty"`
}

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

type DayActivities struct {
	Morning   Activity `json:"morning"`
	Afternoon Activity `json:"afternoon"`
	Evening   Activity `json:"evening"`
}

// BySlot returns the activity in the given time slot.
func (d *DayActivities) BySlot(slot string) (Activity, bool) {
	switch slot {
	case SlotMorning:
		return d.Morning, true
	case SlotAfternoon:
		return d.Afternoon, true
	case SlotEvening:
		return d.Evening, true
	}
	return Activity{}, false
}

// SetSlot replaces the activity in the given time slot.
func (d *DayActivities) SetSlot(slot string, activity Activity) bool {
	switch slot {
	case SlotMorning:
		d.Morning = activity
	case SlotAfternoon:
		d.Afternoon = activity
	case SlotEvening:
		d.Evening = activity
	default:
		return false
	}
	return true
}

// CostSum is the fresh sum of the three slot costs, independent of any
// rescaled TotalCost.
func (d *DayActivities) CostSum() float64 {
	return d.Morning.Cost + d.Afternoon.Cost + d.Evening.Cost
}

func (d *DayActivities) DurationSum() float64 {
	return d.Morning.Duration + d.Afternoon.Duration + d.Evening.Duration
}

type Day struct {
	DayNumber     int           `json:"dayNumber"`
	Date          string        `json:"date"` // calendar date, no time of day
	Activities    DayActivities `json:"activities"`
	TotalCost     float64       `json:"totalCost"`
	TotalDuration float64       `json:"totalDuration"`
}

type Itinerary struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	PartySize   int     `json:"partySize"`
	TotalCost   float64 `json:"totalCost"`
	CreatedAt   string  `json:"createdAt"`
	Days        []Day   `json:"days"`
}
