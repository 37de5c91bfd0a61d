package components

import (
	"priceflow/internal/pkg/clock"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScheduleCommands,
		commands.NewScheduleRunner,
		commands.NewPricingCommands,
		commands.NewProductCommands,
		commands.NewInventoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
		queries.NewProductQueries,
		queries.NewInventoryQueries,
	),
)
