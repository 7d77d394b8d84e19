package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"flight-onboard/cmd/bootstrap"
	"flight-onboard/internal/handler"
	"flight-onboard/internal/pkg/config"
	"flight-onboard/internal/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug info because of a misconfiguration
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newServer(addr string, h http.Handler, operation string, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      telemetry.HTTPMiddleware(operation, "/health")(h),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// listenAll binds every server address before any of them serves, so a
// failed bind leaves nothing running that OnStop would have to stop.
func listenAll(servers []*http.Server) ([]net.Listener, error) {
	listeners := make([]net.Listener, 0, len(servers))
	for _, srv := range servers {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, open := range listeners {
				_ = open.Close()
			}
			return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		listeners = append(listeners, ln)
	}
	return listeners, nil
}

// @title           flight-onboard
// @version         1.0
// @description     In-flight snack ordering and flight status APIs.

// @BasePath  /
// @schemes http
func startServers(lc fx.Lifecycle, engines *handler.Engines, cfg config.Config, logger *slog.Logger, _ *telemetry.Provider) {
	servers := []*http.Server{
		newServer(cfg.Server.OnboardAddr(), engines.Onboard, handler.SurfaceOnboard, cfg.Server),
		newServer(cfg.Server.FlightStatusAddr(), engines.FlightStatus, handler.SurfaceFlightStatus, cfg.Server),
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listeners, err := listenAll(servers)
			if err != nil {
				return err
			}
			for i, srv := range servers {
				logger.Info("🚀 starting server", "address", srv.Addr, "mode", gin.Mode())
				go func(srv *http.Server, ln net.Listener) {
					if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error("server stopped unexpectedly", "address", srv.Addr, "error", err)
					}
				}(srv, listeners[i])
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 stopping servers")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()

			var errs []error
			for _, srv := range servers {
				if err := srv.Shutdown(ctx); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			startServers,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
}
