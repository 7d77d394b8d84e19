package bootstrap

import (
	"context"
	"log/slog"

	"flight-onboard/internal/pkg/config"
	"flight-onboard/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetry,
	),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := provider.Shutdown(ctx); err != nil {
				logger.Warn("failed to flush traces", "error", err)
			}
			return nil
		},
	})

	logger.Info("telemetry initialized", "service", cfg.Telemetry.ServiceName, "exporting", provider.Exported())
	return provider, nil
}
