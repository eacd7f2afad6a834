package rating_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
)

var Module = fx.Provide(provideRatingRepo, provideRatingService)

func provideRatingRepo(db *gorm.DB) repositories.RatingRepository {
	return repositories.NewRatingRepository(db)
}

func provideRatingService(ratingRepo repositories.RatingRepository) services.RatingServiceInterface {
	return services.NewRatingService(ratingRepo)
}
