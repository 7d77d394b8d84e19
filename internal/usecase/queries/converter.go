package queries

import (
	"flight-onboard/internal/domain/flight"
	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/domain/snack"
	"flight-onboard/internal/pkg/ptr"
)

func ToSnackView(s *snack.Snack) SnackView {
	return SnackView{
		ID:       s.ID(),
		Name:     s.Name(),
		ImageURL: s.ImageURL(),
	}
}

func ToSeatView(s *seat.Seat) SeatView {
	return SeatView{
		ID:     s.ID(),
		Tier:   s.Tier().String(),
		Orders: s.Orders(),
	}
}

func ToFlightView(f *flight.Flight) FlightView {
	v := FlightView{
		Code:               f.Code(),
		Origin:             f.Origin(),
		Destination:        f.Destination(),
		Class:              f.Class().String(),
		DepartureDate:      f.DepartureDate().String(),
		ScheduledDeparture: f.ScheduledDeparture().String(),
		ScheduledArrival:   f.ScheduledArrival().String(),
	}
	v.Override = ptr.NonZero(f.Override().String())
	if r, ok := f.Revision(); ok {
		v.RevisedDeparture = ptr.Of(r.Departure().String())
		v.RevisedArrival = ptr.Of(r.Arrival().String())
	}
	return v
}
