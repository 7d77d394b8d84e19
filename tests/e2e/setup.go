//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"flight-onboard/cmd/bootstrap"
	"flight-onboard/cmd/bootstrap/components"
	"flight-onboard/internal/handler"
	"flight-onboard/internal/pkg/clock"
	"flight-onboard/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// The demo board is dated October 2025; pinning "now" keeps statuses stable.
var BoardTime = time.Date(2025, time.October, 18, 21, 10, 0, 0, time.Local)

// ------------------------------------------------------------
// Builds the full application graph with the test config and a pinned clock.
// Returns engines, config and the fx.App for lifecycle management.
// ------------------------------------------------------------
func buildE2EApp(clk clock.Clock) (*handler.Engines, config.Config, *fx.App) {
	var engines *handler.Engines
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		bootstrap.LoggerModule,
		bootstrap.TelemetryModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),
		fx.Populate(&engines, &cfg),

		// start without fx logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return engines, cfg, app
}

func setupE2EEnvironment(t *testing.T, clk clock.Clock) (*handler.Engines, config.Config) {
	gin.SetMode(gin.TestMode)

	engines, cfg, app := buildE2EApp(clk)
	require.NotNil(t, engines, "failed to build engines")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return engines, cfg
}

// ------------------------------------------------------------
// Shared setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Engines *handler.Engines
	Config  config.Config
	Clock   *clock.MockClock
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	s.Clock = clock.NewMockClock(BoardTime)
	s.Engines, s.Config = setupE2EEnvironment(t, s.Clock)
	require.NotNil(t, s.Engines.Onboard, "onboard engine missing")
	require.NotNil(t, s.Engines.FlightStatus, "flight status engine missing")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest rebuilds the graph so seat counters start from the seed again.
func (s *SharedSuite) SetupSubTest() {
	s.SetupSharedSuite(s.T())
}
