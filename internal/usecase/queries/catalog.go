package queries

import (
	"context"

	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/domain/snack"
)

type SnackReadStore interface {
	List(ctx context.Context) ([]*snack.Snack, error)
}

type SeatReadStore interface {
	List(ctx context.Context) ([]*seat.Seat, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/catalog.go -package=queriesmock flight-onboard/internal/usecase/queries CatalogQueries

type CatalogQueries interface {
	ListSnacks(ctx context.Context) ([]SnackView, error)
	ListSeats(ctx context.Context) ([]SeatView, error)
}

type catalogQueriesImpl struct {
	snacks SnackReadStore
	seats  SeatReadStore
}

func NewCatalogQueries(snacks SnackReadStore, seats SeatReadStore) CatalogQueries {
	return &catalogQueriesImpl{snacks: snacks, seats: seats}
}

func (q *catalogQueriesImpl) ListSnacks(ctx context.Context) ([]SnackView, error) {
	rows, err := q.snacks.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SnackView, len(rows))
	for i, s := range rows {
		out[i] = ToSnackView(s)
	}
	return out, nil
}

func (q *catalogQueriesImpl) ListSeats(ctx context.Context) ([]SeatView, error) {
	rows, err := q.seats.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SeatView, len(rows))
	for i, s := range rows {
		out[i] = ToSeatView(s)
	}
	return out, nil
}
