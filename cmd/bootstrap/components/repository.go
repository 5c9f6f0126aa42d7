package components

import (
	"github.com/akshattiwarii/Peakster/internal/infra/gemini"
	"github.com/akshattiwarii/Peakster/internal/infra/readstore"
	repo_impl "github.com/akshattiwarii/Peakster/internal/infra/repository"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"
	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewQuotaRepository,
			fx.As(new(commands.QuotaRepository)),
		),
		fx.Annotate(
			repo_impl.NewTripRepository,
			fx.As(new(commands.TripRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewTripReadStore,
			fx.As(new(queries.TripReadStore)),
		),
		// Itinerary generation backend
		fx.Annotate(
			func(c *gemini.Client) *gemini.Client { return c },
			fx.As(new(commands.ItineraryGenerator)),
		),
	),
)
