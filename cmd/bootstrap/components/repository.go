package components

import (
	"priceflow/internal/infra/readstore"
	"priceflow/internal/infra/writerepo"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			writerepo.NewScheduleRepository,
			fx.As(new(commands.ScheduleRepository)),
		),
		fx.Annotate(
			writerepo.NewSessionStore,
			fx.As(new(commands.SessionStore)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)
