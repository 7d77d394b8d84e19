package request

// PlaceOrderRequest is the body of POST /api/pedido. Pointers distinguish a
// missing field from an explicit zero.
type PlaceOrderRequest struct {
	SeatID  *int `json:"assento_id"`
	SnackID *int `json:"snack_id"`
}

func (r PlaceOrderRequest) IsComplete() bool {
	return r.SeatID != nil && r.SnackID != nil
}
