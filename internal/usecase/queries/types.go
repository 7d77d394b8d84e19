package queries

// SnackView represents read-optimized snack catalog data
type SnackView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// SeatView is a point-in-time snapshot of a seat and its order counter
type SeatView struct {
	ID     int    `json:"id"`
	Tier   string `json:"tier"`
	Orders int    `json:"orders"`
}

// FlightView mirrors the flight-board record; optional fields are nil when absent
type FlightView struct {
	Code               string  `json:"code"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	Class              string  `json:"class"`
	DepartureDate      string  `json:"departure_date"`
	ScheduledDeparture string  `json:"scheduled_departure"`
	ScheduledArrival   string  `json:"scheduled_arrival"`
	Override           *string `json:"override,omitempty"`
	RevisedDeparture   *string `json:"revised_departure,omitempty"`
	RevisedArrival     *string `json:"revised_arrival,omitempty"`
}

type FlightStatusView struct {
	Flight FlightView `json:"flight"`
	Status string     `json:"status"`
}
