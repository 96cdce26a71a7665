package components

import (
	"carrental-storefront/internal/usecase/commands"
	"carrental-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCalendarCommands,
		commands.NewBookingCommands,
		commands.NewAdminCarCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCarQueries,
	),
)
