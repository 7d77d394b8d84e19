package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/infra"
)

type seatEntry struct {
	mu   sync.Mutex
	seat *seat.Seat
}

// SeatStore keeps seats in process memory. Each seat has its own lock so
// order counters never lose updates while unrelated seats proceed in parallel.
type SeatStore struct {
	entries map[int]*seatEntry
	ids     []int
}

func NewSeatStore(seats []*seat.Seat) *SeatStore {
	s := &SeatStore{
		entries: make(map[int]*seatEntry, len(seats)),
		ids:     make([]int, 0, len(seats)),
	}
	for _, st := range seats {
		s.entries[st.ID()] = &seatEntry{seat: st.Clone()}
		s.ids = append(s.ids, st.ID())
	}
	sort.Ints(s.ids)
	return s
}

func (s *SeatStore) FindByID(_ context.Context, id int) (*seat.Seat, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, seatNotFound(id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seat.Clone(), nil
}

// List returns snapshots ordered by seat id.
func (s *SeatStore) List(_ context.Context) ([]*seat.Seat, error) {
	out := make([]*seat.Seat, 0, len(s.ids))
	for _, id := range s.ids {
		e := s.entries[id]
		e.mu.Lock()
		out = append(out, e.seat.Clone())
		e.mu.Unlock()
	}
	return out, nil
}

// Update runs fn against the stored seat while holding its lock. fn mutates
// a working copy; the copy replaces the stored seat only when fn succeeds.
func (s *SeatStore) Update(_ context.Context, id int, fn func(*seat.Seat) error) (*seat.Seat, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, seatNotFound(id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.seat.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	e.seat = working
	return working.Clone(), nil
}

func seatNotFound(id int) error {
	return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("seat %d not found", id))
}
