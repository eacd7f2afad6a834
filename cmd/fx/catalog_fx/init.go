package catalog_fx

import (
	"go.uber.org/fx"
	"tripbuddy/internal/repositories"
)

var Module = fx.Provide(provideActivityCatalog)

func provideActivityCatalog() repositories.ActivityCatalog {
	return repositories.NewActivityCatalog()
}
