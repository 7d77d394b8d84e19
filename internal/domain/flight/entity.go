package flight

import (
	"strings"
)

type FlightSpec struct {
	Code               string
	Origin             string
	Destination        string
	Class              Class
	DepartureDate      Date
	ScheduledDeparture TimeOfDay
	ScheduledArrival   TimeOfDay
	Override           Override
	Revision           *Revision
}

// Flight is an immutable flight-board record.
type Flight struct {
	code               string
	origin             string
	destination        string
	class              Class
	departureDate      Date
	scheduledDeparture TimeOfDay
	scheduledArrival   TimeOfDay
	override           Override
	revision           *Revision
}

func NewFlight(spec FlightSpec) (*Flight, error) {
	code := strings.ToUpper(strings.TrimSpace(spec.Code))
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !spec.Class.IsValid() {
		return nil, ErrInvalidClass
	}
	if !spec.Override.IsValid() {
		return nil, ErrInvalidOverride
	}
	if (spec.Override == OverrideDelayed) != (spec.Revision != nil) {
		return nil, ErrRevisionMismatch
	}

	var revision *Revision
	if spec.Revision != nil {
		r := *spec.Revision
		revision = &r
	}

	return &Flight{
		code:               code,
		origin:             spec.Origin,
		destination:        spec.Destination,
		class:              spec.Class,
		departureDate:      spec.DepartureDate,
		scheduledDeparture: spec.ScheduledDeparture,
		scheduledArrival:   spec.ScheduledArrival,
		override:           spec.Override,
		revision:           revision,
	}, nil
}

func (f *Flight) Code() string {
	return f.code
}

func (f *Flight) Origin() string {
	return f.origin
}

func (f *Flight) Destination() string {
	return f.destination
}

func (f *Flight) Class() Class {
	return f.class
}

func (f *Flight) DepartureDate() Date {
	return f.departureDate
}

func (f *Flight) ScheduledDeparture() TimeOfDay {
	return f.scheduledDeparture
}

func (f *Flight) ScheduledArrival() TimeOfDay {
	return f.scheduledArrival
}

func (f *Flight) Override() Override {
	return f.override
}

func (f *Flight) Revision() (Revision, bool) {
	if f.revision == nil {
		return Revision{}, false
	}
	return *f.revision, true
}

func (f *Flight) EffectiveDeparture() TimeOfDay {
	if f.revision != nil {
		return f.revision.departure
	}
	return f.scheduledDeparture
}

func (f *Flight) EffectiveArrival() TimeOfDay {
	if f.revision != nil {
		return f.revision.arrival
	}
	return f.scheduledArrival
}

// MatchesCode is an exact, case-insensitive comparison.
func (f *Flight) MatchesCode(code string) bool {
	return strings.EqualFold(f.code, code)
}
