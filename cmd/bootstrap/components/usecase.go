package components

import (
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStockQueries,
		queries.NewBalanceQueries,
		queries.NewCartQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewStockCommands,
		commands.NewCouponCommands,
		commands.NewBalanceCommands,
		commands.NewCartCommands,
	),
)
