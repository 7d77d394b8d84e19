package bootstrap

import (
	"flight-onboard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
