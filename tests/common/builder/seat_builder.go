//go:build unit || e2e

package builder

import (
	"fmt"

	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/domain/snack"
	"flight-onboard/internal/usecase/queries"
)

type SeatBuilder struct {
	ID     int
	Tier   string
	Orders int
}

func NewSeatBuilder() *SeatBuilder {
	return &SeatBuilder{
		ID:   1,
		Tier: "Topázio",
	}
}

func (b *SeatBuilder) With(mutate func(*SeatBuilder)) *SeatBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SeatBuilder) BuildDomain() (*seat.Seat, error) {
	tier, err := seat.NewTier(b.Tier)
	if err != nil {
		return nil, err
	}
	return seat.ReconstructSeat(b.ID, tier, b.Orders)
}

func (b *SeatBuilder) MustBuildDomain() *seat.Seat {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *SeatBuilder) BuildView() queries.SeatView {
	return queries.SeatView{
		ID:     b.ID,
		Tier:   b.Tier,
		Orders: b.Orders,
	}
}

// Fluent builder methods
func (b *SeatBuilder) WithID(id int) *SeatBuilder {
	b.ID = id
	return b
}

func (b *SeatBuilder) WithTier(tier string) *SeatBuilder {
	b.Tier = tier
	return b
}

func (b *SeatBuilder) WithOrders(orders int) *SeatBuilder {
	b.Orders = orders
	return b
}

func (b *SeatBuilder) AsBasic() *SeatBuilder {
	b.Tier = "Básico"
	return b
}

// NewSnacks builds a small catalog with sequential ids starting at 1.
func NewSnacks(names ...string) []*snack.Snack {
	snacks := make([]*snack.Snack, 0, len(names))
	for i, name := range names {
		s, err := snack.NewSnack(i+1, name, fmt.Sprintf("/static/snack%d.jpg", i+1))
		if err != nil {
			panic(err)
		}
		snacks = append(snacks, s)
	}
	return snacks
}
