package memstore

import (
	"context"
	"fmt"
	"sort"

	"flight-onboard/internal/domain/snack"
	"flight-onboard/internal/infra"
)

// SnackStore is read-only after construction and needs no locking.
type SnackStore struct {
	byID map[int]*snack.Snack
	ids  []int
}

func NewSnackStore(snacks []*snack.Snack) *SnackStore {
	s := &SnackStore{
		byID: make(map[int]*snack.Snack, len(snacks)),
		ids:  make([]int, 0, len(snacks)),
	}
	for _, sn := range snacks {
		s.byID[sn.ID()] = sn
		s.ids = append(s.ids, sn.ID())
	}
	sort.Ints(s.ids)
	return s
}

func (s *SnackStore) FindByID(_ context.Context, id int) (*snack.Snack, error) {
	sn, ok := s.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("snack %d not found", id))
	}
	return sn, nil
}

func (s *SnackStore) List(_ context.Context) ([]*snack.Snack, error) {
	out := make([]*snack.Snack, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.byID[id])
	}
	return out, nil
}
