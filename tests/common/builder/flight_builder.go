//go:build unit || e2e

package builder

import (
	"flight-onboard/internal/domain/flight"
	"flight-onboard/internal/usecase/queries"
)

// FlightBuilder holds the flight in its wire representation so tests read like the board.
type FlightBuilder struct {
	Code             string
	Origin           string
	Destination      string
	Class            string
	DepartureDate    string
	Departure        string
	Arrival          string
	Override         string
	RevisedDeparture string
	RevisedArrival   string
}

func NewFlightBuilder() *FlightBuilder {
	return &FlightBuilder{
		Code:          "AD4070",
		Origin:        "Campinas (VCP)",
		Destination:   "Recife (REC)",
		Class:         "Nacional",
		DepartureDate: "16/10/2026",
		Departure:     "12:00",
		Arrival:       "15:10",
	}
}

func (b *FlightBuilder) With(mutate func(*FlightBuilder)) *FlightBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *FlightBuilder) BuildDomain() (*flight.Flight, error) {
	class, err := flight.NewClass(b.Class)
	if err != nil {
		return nil, err
	}
	override, err := flight.NewOverride(b.Override)
	if err != nil {
		return nil, err
	}
	date, err := flight.ParseDate(b.DepartureDate)
	if err != nil {
		return nil, err
	}
	departure, err := flight.ParseTimeOfDay(b.Departure)
	if err != nil {
		return nil, err
	}
	arrival, err := flight.ParseTimeOfDay(b.Arrival)
	if err != nil {
		return nil, err
	}

	var revision *flight.Revision
	if b.RevisedDeparture != "" || b.RevisedArrival != "" {
		revDeparture, err := flight.ParseTimeOfDay(b.RevisedDeparture)
		if err != nil {
			return nil, err
		}
		revArrival, err := flight.ParseTimeOfDay(b.RevisedArrival)
		if err != nil {
			return nil, err
		}
		r := flight.NewRevision(revDeparture, revArrival)
		revision = &r
	}

	return flight.NewFlight(flight.FlightSpec{
		Code:               b.Code,
		Origin:             b.Origin,
		Destination:        b.Destination,
		Class:              class,
		DepartureDate:      date,
		ScheduledDeparture: departure,
		ScheduledArrival:   arrival,
		Override:           override,
		Revision:           revision,
	})
}

// MustBuildDomain panics on invalid input; use only with known-good builder state.
func (b *FlightBuilder) MustBuildDomain() *flight.Flight {
	f, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return f
}

func (b *FlightBuilder) BuildView() queries.FlightView {
	v := queries.FlightView{
		Code:               b.Code,
		Origin:             b.Origin,
		Destination:        b.Destination,
		Class:              b.Class,
		DepartureDate:      b.DepartureDate,
		ScheduledDeparture: b.Departure,
		ScheduledArrival:   b.Arrival,
	}
	if b.Override != "" {
		override := b.Override
		v.Override = &override
	}
	if b.RevisedDeparture != "" {
		dep, arr := b.RevisedDeparture, b.RevisedArrival
		v.RevisedDeparture = &dep
		v.RevisedArrival = &arr
	}
	return v
}

func (b *FlightBuilder) BuildStatusView(status string) *queries.FlightStatusView {
	return &queries.FlightStatusView{
		Flight: b.BuildView(),
		Status: status,
	}
}

// Fluent builder methods
func (b *FlightBuilder) WithCode(code string) *FlightBuilder {
	b.Code = code
	return b
}

func (b *FlightBuilder) OnDate(date string) *FlightBuilder {
	b.DepartureDate = date
	return b
}

func (b *FlightBuilder) WithSchedule(departure, arrival string) *FlightBuilder {
	b.Departure = departure
	b.Arrival = arrival
	return b
}

func (b *FlightBuilder) AsCanceled() *FlightBuilder {
	b.Override = "Cancelado"
	b.RevisedDeparture = ""
	b.RevisedArrival = ""
	return b
}

func (b *FlightBuilder) AsDelayed(departure, arrival string) *FlightBuilder {
	b.Override = "Adiado"
	b.RevisedDeparture = departure
	b.RevisedArrival = arrival
	return b
}
