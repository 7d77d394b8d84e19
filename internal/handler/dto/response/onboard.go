package response

import (
	"flight-onboard/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SnackResponse struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// SeatResponse keeps the capitalised keys the reference client reads.
type SeatResponse struct {
	Tier   string `json:"Status"`
	Orders int    `json:"Pedidos"`
}

type SnackCatalogResponse struct {
	Snacks map[int]SnackResponse `json:"snacks"`
}

type SeatMapResponse struct {
	Seats map[int]SeatResponse `json:"assentos"`
}

type OrderResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"mensagem"`
	Seat    SeatResponse `json:"dados_assento"`
}

func FromSnackViews(views []queries.SnackView) (*SnackCatalogResponse, error) {
	out := &SnackCatalogResponse{Snacks: make(map[int]SnackResponse, len(views))}
	for _, v := range views {
		var r SnackResponse
		if err := copier.Copy(&r, &v); err != nil {
			return nil, err
		}
		out.Snacks[v.ID] = r
	}
	return out, nil
}

func FromSeatViews(views []queries.SeatView) (*SeatMapResponse, error) {
	out := &SeatMapResponse{Seats: make(map[int]SeatResponse, len(views))}
	for _, v := range views {
		r, err := FromSeatView(v)
		if err != nil {
			return nil, err
		}
		out.Seats[v.ID] = r
	}
	return out, nil
}

func FromSeatView(v queries.SeatView) (SeatResponse, error) {
	var r SeatResponse
	if err := copier.Copy(&r, &v); err != nil {
		return SeatResponse{}, err
	}
	return r, nil
}
