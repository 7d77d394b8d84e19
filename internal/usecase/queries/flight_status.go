package queries

import (
	"context"

	"flight-onboard/internal/domain/flight"
	"flight-onboard/internal/infra"
	"flight-onboard/internal/pkg/clock"
	"flight-onboard/internal/pkg/errs"
	"flight-onboard/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

var ErrFlightNotFound = errs.New("flight not found")

type FlightReadStore interface {
	List(ctx context.Context) ([]*flight.Flight, error)
	FindByCode(ctx context.Context, code string) (*flight.Flight, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/flight_status.go -package=queriesmock flight-onboard/internal/usecase/queries FlightStatusQueries

type FlightStatusQueries interface {
	ListStatuses(ctx context.Context) ([]*FlightStatusView, error)
	GetStatus(ctx context.Context, code string) (*FlightStatusView, error)
}

type flightStatusQueriesImpl struct {
	flights FlightReadStore
	clock   clock.Clock
}

func NewFlightStatusQueries(flights FlightReadStore, clock clock.Clock) FlightStatusQueries {
	return &flightStatusQueriesImpl{flights: flights, clock: clock}
}

// ListStatuses classifies every flight against a single reading of the clock.
func (q *flightStatusQueriesImpl) ListStatuses(ctx context.Context) ([]*FlightStatusView, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "queries.ListFlightStatuses")
	defer span.End()

	rows, err := q.flights.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := q.clock.Now()
	out := make([]*FlightStatusView, len(rows))
	for i, f := range rows {
		out[i] = &FlightStatusView{
			Flight: ToFlightView(f),
			Status: flight.Classify(f, now).String(),
		}
	}
	span.SetAttributes(attribute.Int("flight.count", len(out)))
	return out, nil
}

func (q *flightStatusQueriesImpl) GetStatus(ctx context.Context, code string) (*FlightStatusView, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "queries.GetFlightStatus")
	defer span.End()
	span.SetAttributes(attribute.String("flight.code", code))

	f, err := q.flights.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrFlightNotFound, "code %q", code)
		}
		span.RecordError(err)
		return nil, err
	}

	status := flight.Classify(f, q.clock.Now())
	span.SetAttributes(attribute.String("flight.status", status.String()))
	return &FlightStatusView{
		Flight: ToFlightView(f),
		Status: status.String(),
	}, nil
}
