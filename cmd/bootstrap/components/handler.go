package components

import (
	"priceflow/internal/handler"
	"priceflow/internal/handler/api"
	"priceflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewPricingHandler,
		api.NewProductHandler,
		api.NewInventoryHandler,
		middleware.NewShopAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
