package flight

import "errors"

var (
	ErrEmptyCode        = errors.New("flight code cannot be empty")
	ErrInvalidTimeOfDay = errors.New("time of day must be formatted as HH:MM")
	ErrInvalidDate      = errors.New("date must be formatted as DD/MM/YYYY")
	ErrInvalidClass     = errors.New("invalid flight class")
	ErrInvalidOverride  = errors.New("invalid status override")
	ErrRevisionMismatch = errors.New("revised times must be present exactly when the flight is delayed")
)

// Class is display-only; it never influences the computed status.
type Class string

const (
	ClassDomestic      Class = "Nacional"
	ClassInternational Class = "Internacional"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassDomestic, ClassInternational:
		return true
	default:
		return false
	}
}

func NewClass(s string) (Class, error) {
	c := Class(s)
	if !c.IsValid() {
		return "", ErrInvalidClass
	}
	return c, nil
}

// Override is a fixed status set by operations staff. The zero value means
// the status is fully computed from the schedule.
type Override string

const (
	OverrideNone     Override = ""
	OverrideCanceled Override = "Cancelado"
	OverrideDelayed  Override = "Adiado"
)

func (o Override) String() string {
	return string(o)
}

func (o Override) IsValid() bool {
	switch o {
	case OverrideNone, OverrideCanceled, OverrideDelayed:
		return true
	default:
		return false
	}
}

func NewOverride(s string) (Override, error) {
	o := Override(s)
	if !o.IsValid() {
		return "", ErrInvalidOverride
	}
	return o, nil
}

// Phase is the computed part of a flight status.
type Phase string

const (
	PhaseScheduled Phase = "Programado"
	PhaseBoarding  Phase = "Embarcando"
	PhaseDeparted  Phase = "Decolado"
	PhaseLanding   Phase = "Aterrissando"
	PhaseLanded    Phase = "Aterrissado"
)

func (p Phase) String() string {
	return string(p)
}
