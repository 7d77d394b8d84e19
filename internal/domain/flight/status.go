package flight

import (
	"encoding/json"
	"time"
)

const (
	boardingWindowMinutes = 30
	landingWindowMinutes  = 30
)

// Status is the label shown on the board: "Cancelado", a phase, or "Adiado - <phase>".
type Status struct {
	override Override
	phase    Phase
}

func NewStatus(override Override, phase Phase) Status {
	if override == OverrideCanceled {
		return Status{override: OverrideCanceled}
	}
	return Status{override: override, phase: phase}
}

func (s Status) Override() Override {
	return s.override
}

// Phase is empty for canceled flights.
func (s Status) Phase() Phase {
	return s.phase
}

func (s Status) String() string {
	switch s.override {
	case OverrideCanceled:
		return OverrideCanceled.String()
	case OverrideDelayed:
		return OverrideDelayed.String() + " - " + s.phase.String()
	default:
		return s.phase.String()
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Classify derives the board status of f at now.
//
// Times are compared as raw minutes of day: there is no rollover for
// overnight flights, so an arrival at 03:30 after a 23:00 departure is
// measured against the clock as-is. The departure date is the scheduled one
// even for delayed flights; only the times are revised.
func Classify(f *Flight, now time.Time) Status {
	if f.override == OverrideCanceled {
		return NewStatus(OverrideCanceled, "")
	}

	departure := f.EffectiveDeparture().Minutes()
	arrival := f.EffectiveArrival().Minutes()
	current := TimeOfDayOf(now).Minutes()
	today := DateOf(now)

	untilDeparture := departure - current
	arrivalGap := abs(arrival - current)

	// The departure instant HH:MM:00 is already behind now during its own minute.
	departed := f.departureDate.Before(today) ||
		(f.departureDate == today && departure <= current)

	var phase Phase
	switch {
	case departed:
		switch {
		case arrivalGap > 0 && arrivalGap < landingWindowMinutes && arrivalGap > untilDeparture:
			phase = PhaseLanding
		case arrivalGap > landingWindowMinutes && arrivalGap > untilDeparture:
			phase = PhaseLanded
		default:
			// arrivalGap == landingWindowMinutes lands here too.
			phase = PhaseDeparted
		}
	case f.departureDate == today && untilDeparture <= boardingWindowMinutes:
		phase = PhaseBoarding
	default:
		phase = PhaseScheduled
	}

	return NewStatus(f.override, phase)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
