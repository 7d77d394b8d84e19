package components

import (
	"flight-onboard/internal/infra/memstore"
	"flight-onboard/internal/infra/seed"
	"flight-onboard/internal/pkg/config"
	"flight-onboard/internal/usecase/commands"
	"flight-onboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDataset,
		// Seat
		fx.Annotate(
			NewSeatStore,
			fx.As(new(commands.SeatRepository)),
			fx.As(new(queries.SeatReadStore)),
		),
		// Snack
		fx.Annotate(
			NewSnackStore,
			fx.As(new(commands.SnackRepository)),
			fx.As(new(queries.SnackReadStore)),
		),
		// Flight
		fx.Annotate(
			NewFlightStore,
			fx.As(new(queries.FlightReadStore)),
		),
	),
)

func NewDataset(cfg config.Config) (*seed.Dataset, error) {
	return seed.Load(cfg.Seed.File)
}

// The stores below are built once and shared, so every request sees the same seat counters.

func NewSeatStore(ds *seed.Dataset) *memstore.SeatStore {
	return memstore.NewSeatStore(ds.Seats)
}

func NewSnackStore(ds *seed.Dataset) *memstore.SnackStore {
	return memstore.NewSnackStore(ds.Snacks)
}

func NewFlightStore(ds *seed.Dataset) *memstore.FlightStore {
	return memstore.NewFlightStore(ds.Flights)
}
