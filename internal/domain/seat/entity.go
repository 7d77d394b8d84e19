package seat

type Seat struct {
	id     int
	tier   Tier
	orders int
}

func NewSeat(id int, tier Tier) (*Seat, error) {
	return ReconstructSeat(id, tier, 0)
}

func ReconstructSeat(id int, tier Tier, orders int) (*Seat, error) {
	if id <= 0 {
		return nil, ErrInvalidSeatID
	}
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if orders < 0 {
		return nil, ErrNegativeOrders
	}
	return &Seat{id: id, tier: tier, orders: orders}, nil
}

func (s *Seat) ID() int {
	return s.id
}

func (s *Seat) Tier() Tier {
	return s.tier
}

func (s *Seat) Orders() int {
	return s.orders
}

func (s *Seat) CanOrder() bool {
	return !s.tier.HasSnackQuota() || s.orders < snackQuota
}

// PlaceOrder counts one more snack for the seat. A refused order leaves the count untouched.
func (s *Seat) PlaceOrder() error {
	if !s.CanOrder() {
		return ErrQuotaExceeded
	}
	s.orders++
	return nil
}

func (s *Seat) Clone() *Seat {
	c := *s
	return &c
}
