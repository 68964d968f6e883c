package trips

import (
	"context"
	"sort"
	"sync"
)

type Store interface {
	Create(ctx context.Context, t *Trip) error
	Get(ctx context.Context, id string) (*Trip, error)
	// List returns at most limit trips, newest first.
	List(ctx context.Context, limit int) ([]*Trip, error)
}

// MemoryStore keeps trips for the life of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	trips map[string]*Trip
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trips: make(map[string]*Trip)}
}

func (s *MemoryStore) Create(_ context.Context, t *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[t.ID] = cloneTrip(t)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTrip(t), nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]*Trip, error) {
	s.mu.RLock()
	out := make([]*Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, cloneTrip(t))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// cloneTrip copies t deeply so callers never alias stored state.
func cloneTrip(t *Trip) *Trip {
	cp := *t
	cp.Itinerary = t.Itinerary.Clone()
	cp.Booking = t.Booking.Clone()
	return &cp
}
