package response

import (
	"flight-onboard/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// FlightResponse reproduces the flight-board record; absent optional fields
// are serialised as null, never omitted.
type FlightResponse struct {
	Code               string  `json:"codigo_voo"`
	Origin             string  `json:"origem"`
	Destination        string  `json:"destino"`
	Class              string  `json:"voo"`
	DepartureDate      string  `json:"dia_partida"`
	ScheduledDeparture string  `json:"partida_programada"`
	ScheduledArrival   string  `json:"chegada_programada"`
	Override           *string `json:"status"`
	RevisedDeparture   *string `json:"nova_partida"`
	RevisedArrival     *string `json:"nova_chegada"`
}

type FlightStatusResponse struct {
	Flight FlightResponse `json:"info_voo"`
	Status string         `json:"status_calculado"`
}

type WelcomeResponse struct {
	Greeting string `json:"ola"`
}

func FromFlightStatusView(v *queries.FlightStatusView) (*FlightStatusResponse, error) {
	out := &FlightStatusResponse{Status: v.Status}
	if err := copier.Copy(&out.Flight, &v.Flight); err != nil {
		return nil, err
	}
	return out, nil
}

func FromFlightStatusViews(views []*queries.FlightStatusView) ([]*FlightStatusResponse, error) {
	out := make([]*FlightStatusResponse, len(views))
	for i, v := range views {
		r, err := FromFlightStatusView(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
