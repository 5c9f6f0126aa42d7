package components

import (
	"github.com/akshattiwarii/Peakster/internal/handler"
	"github.com/akshattiwarii/Peakster/internal/handler/api"
	"github.com/akshattiwarii/Peakster/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPlanHandler,
		api.NewTripHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
