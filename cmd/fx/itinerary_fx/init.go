package itinerary_fx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
	mem "tripbuddy/pkg/memcache"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryCache,
	provideRand,
	provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryCache() mem.ItineraryCache {
	return mem.NewRecentItineraries()
}

func provideRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func provideItineraryService(
	catalog repositories.ActivityCatalog,
	itineraryRepo repositories.ItineraryRepository,
	cache mem.ItineraryCache,
	rng *rand.Rand,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(catalog, itineraryRepo, cache, rng)
}
