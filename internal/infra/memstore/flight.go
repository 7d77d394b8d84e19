package memstore

import (
	"context"
	"fmt"

	"flight-onboard/internal/domain/flight"
	"flight-onboard/internal/infra"
)

// FlightStore keeps the board in dataset order. Flights are immutable, so
// readers share the records without locking.
type FlightStore struct {
	flights []*flight.Flight
}

func NewFlightStore(flights []*flight.Flight) *FlightStore {
	return &FlightStore{flights: append([]*flight.Flight(nil), flights...)}
}

func (s *FlightStore) List(_ context.Context) ([]*flight.Flight, error) {
	return append([]*flight.Flight(nil), s.flights...), nil
}

// FindByCode scans linearly; the board holds a handful of flights.
func (s *FlightStore) FindByCode(_ context.Context, code string) (*flight.Flight, error) {
	for _, f := range s.flights {
		if f.MatchesCode(code) {
			return f, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("flight %q not found", code))
}
