package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"tripbuddy/internal/models/request_models"
	"tripbuddy/internal/models/response_models"
	"tripbuddy/internal/repositories"
	mem "tripbuddy/pkg/memcache"
	"tripbuddy/pkg/utils"
)

const (
	// Per-slot share of the daily budget an activity may cost.
	morningBudgetShare   = 0.4
	afternoonBudgetShare = 0.4
	eveningBudgetShare   = 0.6

	// Itinerary totals further than this from the requested budget get the
	// day totals rescaled.
	budgetVarianceTolerance = 0.05

	maxSwapAlternatives = 5
	swapCostTolerance   = 0.10
	swapTimeTolerance   = 0.15

	itineraryCacheTTL = 15 * time.Minute
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.CreateTripRequest) (*response_models.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*response_models.Itinerary, error)
	SwapAlternatives(current response_models.Activity, destination string) []response_models.Activity
	ApplySwap(ctx context.Context, itineraryID string, dayNumber int, timeSlot string, newActivity response_models.Activity) (*response_models.SwapResult, error)
}

type ItineraryService struct {
	catalog       repositories.ActivityCatalog
	itineraryRepo repositories.ItineraryRepository
	cache         mem.ItineraryCache

	// rng is injected so tests can seed selection deterministically.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewItineraryService(
	catalog repositories.ActivityCatalog,
	itineraryRepo repositories.ItineraryRepository,
	cache mem.ItineraryCache,
	rng *rand.Rand,
) ItineraryServiceInterface {
	return &ItineraryService{
		catalog:       catalog,
		itineraryRepo: itineraryRepo,
		cache:         cache,
		rng:           rng,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.CreateTripRequest) (*response_models.Itinerary, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	activities := s.catalog.ActivitiesForDestination(req.Destination)
	createdAt := time.Now()

	itinerary := &response_models.Itinerary{
		ID:          newItineraryID(createdAt),
		Destination: req.Destination,
		PartySize:   req.PartySize,
		CreatedAt:   createdAt.UTC().Format(time.RFC3339),
	}

	// Stub record first, days filled in below. Keeps the write order of the
	// surrounding API observable as create-then-update.
	if err := s.itineraryRepo.CreateItinerary(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	dailyBudget := req.Budget / float64(req.TripLength)

	days := make([]response_models.Day, 0, req.TripLength)
	for dayNum := 1; dayNum <= req.TripLength; dayNum++ {
		morningPool := filterActivities(activities, func(a response_models.Activity) bool {
			return (a.Subcategory == "beach" || a.Subcategory == "hiking" || a.Subcategory == "tours") &&
				a.Cost <= dailyBudget*morningBudgetShare
		})
		afternoonPool := filterActivities(activities, func(a response_models.Activity) bool {
			return (a.Subcategory == "cultural" || a.Subcategory == "water_sports" || a.Subcategory == "historical") &&
				a.Cost <= dailyBudget*afternoonBudgetShare
		})
		eveningPool := filterActivities(activities, func(a response_models.Activity) bool {
			return (a.Category == "dining" || a.Subcategory == "nightlife" || a.Subcategory == "cruise") &&
				a.Cost <= dailyBudget*eveningBudgetShare
		})

		// Empty pools fall back to a fixed catalog position regardless of
		// category, so picks may repeat across slots and days.
		slots := response_models.DayActivities{
			Morning:   s.pick(morningPool, activities, 0),
			Afternoon: s.pick(afternoonPool, activities, 1),
			Evening:   s.pick(eveningPool, activities, 2),
		}

		days = append(days, response_models.Day{
			DayNumber:     dayNum,
			Date:          utils.TripDayDate(createdAt, dayNum),
			Activities:    slots,
			TotalCost:     slots.CostSum(),
			TotalDuration: slots.DurationSum(),
		})
	}

	totalCost := sumDayCosts(days)

	// Keep the plan within ±5% of the requested budget by scaling the day
	// totals. Individual activity costs inside each day are left unchanged,
	// matching the product's display behavior.
	variance := math.Abs(totalCost-req.Budget) / req.Budget
	if variance > budgetVarianceTolerance && totalCost != 0 {
		scale := req.Budget / totalCost
		for i := range days {
			days[i].TotalCost = math.Round(days[i].TotalCost * scale)
		}
	}

	itinerary.Days = days
	itinerary.TotalCost = sumDayCosts(days)

	if err := s.itineraryRepo.UpdateItinerary(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.cache.Set(itinerary.ID, itinerary, itineraryCacheTTL)

	return itinerary, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.Itinerary, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: itinerary id is required", utils.ErrInvalidInput)
	}
	if cached, ok := s.cache.Get(id); ok {
		return cached, nil
	}

	itinerary, err := s.itineraryRepo.GetItinerary(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	s.cache.Set(id, itinerary, itineraryCacheTTL)
	return itinerary, nil
}

// SwapAlternatives returns up to five same-category activities within ±10%
// cost and ±15% duration of the current one, in catalog order. A zero cost
// or duration on the current activity disables that tolerance check.
func (s *ItineraryService) SwapAlternatives(current response_models.Activity, destination string) []response_models.Activity {
	all := s.catalog.ActivitiesForDestination(destination)

	alternatives := make([]response_models.Activity, 0, maxSwapAlternatives)
	for _, a := range all {
		if a.ID == current.ID || a.Category != current.Category {
			continue
		}
		if !withinTolerance(a.Cost, current.Cost, swapCostTolerance) {
			continue
		}
		if !withinTolerance(a.Duration, current.Duration, swapTimeTolerance) {
			continue
		}
		alternatives = append(alternatives, a)
		if len(alternatives) == maxSwapAlternatives {
			break
		}
	}
	return alternatives
}

func (s *ItineraryService) ApplySwap(
	ctx context.Context,
	itineraryID string,
	dayNumber int,
	timeSlot string,
	newActivity response_models.Activity,
) (*response_models.SwapResult, error) {

	itinerary, err := s.GetItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	dayIdx := -1
	for i := range itinerary.Days {
		if itinerary.Days[i].DayNumber == dayNumber {
			dayIdx = i
			break
		}
	}
	if dayIdx == -1 {
		return nil, utils.ErrDayNotFound
	}

	day := &itinerary.Days[dayIdx]
	oldActivity, ok := day.Activities.BySlot(timeSlot)
	if !ok {
		return nil, fmt.Errorf("%w: unknown time slot %q", utils.ErrInvalidInput, timeSlot)
	}

	day.Activities.SetSlot(timeSlot, newActivity)
	day.TotalCost = day.Activities.CostSum()
	itinerary.TotalCost = sumDayCosts(itinerary.Days)

	if err := s.itineraryRepo.UpdateItinerary(ctx, itinerary); err != nil {
		// The swap mutated the cached itinerary in place; drop it so reads
		// go back to the persisted state.
		s.cache.Invalidate(itinerary.ID)
		return nil, utils.ErrDatabaseError
	}
	s.cache.Set(itinerary.ID, itinerary, itineraryCacheTTL)

	return &response_models.SwapResult{
		Itinerary: itinerary,
		SwapDetails: response_models.SwapDetails{
			OldActivity:    oldActivity.Name,
			NewActivity:    newActivity.Name,
			CostDifference: newActivity.Cost - oldActivity.Cost,
		},
	}, nil
}

func (s *ItineraryService) pick(pool, all []response_models.Activity, fallbackIdx int) response_models.Activity {
	if len(pool) == 0 {
		// Catalog contract guarantees at least three entries.
		return all[fallbackIdx]
	}
	s.rngMu.Lock()
	i := s.rng.Intn(len(pool))
	s.rngMu.Unlock()
	return pool[i]
}

func validateTripRequest(req request_models.CreateTripRequest) error {
	switch {
	case req.Budget < 100:
		return fmt.Errorf("%w: budget must be at least 100", utils.ErrInvalidInput)
	case req.TripLength < 1 || req.TripLength > 30:
		return fmt.Errorf("%w: trip length must be between 1 and 30 days", utils.ErrInvalidInput)
	case req.PartySize < 1 || req.PartySize > 20:
		return fmt.Errorf("%w: party size must be between 1 and 20", utils.ErrInvalidInput)
	case strings.TrimSpace(req.Destination) == "":
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	return nil
}

func filterActivities(activities []response_models.Activity, keep func(response_models.Activity) bool) []response_models.Activity {
	var out []response_models.Activity
	for _, a := range activities {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func withinTolerance(value, base, tolerance float64) bool {
	if base == 0 {
		return true
	}
	return math.Abs(value-base)/base <= tolerance
}

func sumDayCosts(days []response_models.Day) float64 {
	var total float64
	for _, day := range days {
		total += day.TotalCost
	}
	return total
}

func newItineraryID(createdAt time.Time) string {
	return fmt.Sprintf("itinerary_%d_%s", createdAt.UnixMilli(), uuid.NewString()[:8])
}
