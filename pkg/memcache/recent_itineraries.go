// pkg/mem/recent_itineraries.go
package mem

import (
	"sync"
	"time"

	"tripbuddy/internal/models/response_models"
)

// ItineraryCache is a read-through cache in front of the itinerary store.
// Swap and chat turns re-read the active itinerary on every call, so recent
// plans are kept in memory for a short window.
type ItineraryCache interface {
	Set(id string, itinerary *response_models.Itinerary, ttl time.Duration)

	// Get returns the cached itinerary if present and not expired.
	Get(id string) (*response_models.Itinerary, bool)

	// Invalidate drops an entry, e.g. after an external write.
	Invalidate(id string)
}

type entry struct {
	itinerary *response_models.Itinerary
	expiresAt time.Time
}

type RecentItineraries struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRecentItineraries() *RecentItineraries {
	return &RecentItineraries{
		data: make(map[string]entry),
	}
}

func (s *RecentItineraries) Set(id string, itinerary *response_models.Itinerary, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		itinerary: itinerary,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RecentItineraries) Get(id string) (*response_models.Itinerary, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, id)
		s.mu.Unlock()
		return nil, false
	}
	return e.itinerary, true
}

func (s *RecentItineraries) Invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
