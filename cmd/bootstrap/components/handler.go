package components

import (
	"flight-onboard/internal/handler"
	"flight-onboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOnboardHandler,
		api.NewFlightStatusHandler,
		handler.NewEngines,
	),
)
