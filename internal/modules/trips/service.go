package trips

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create stores a trip and returns its id. The itinerary is required; a blank title is
// derived from the destination.
func (s *Service) Create(ctx context.Context, cmd CreateTripCommand) (string, error) {
	if cmd.Itinerary == nil || len(cmd.Itinerary.Days) == 0 {
		return "", errors.Wrap(ErrInvalid, "itinerary with days is required")
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title = "Trip"
		if dest := strings.TrimSpace(cmd.Itinerary.Meta.Destination); dest != "" {
			title = dest + " trip"
		}
	}
	t := &Trip{
		ID:        "trip_" + uuid.NewString(),
		Title:     title,
		OwnerID:   cmd.OwnerID,
		Itinerary: cmd.Itinerary,
		Booking:   cmd.Booking,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Trip, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// List clamps limit to 1..MaxListLimit, using DefaultListLimit when unset.
func (s *Service) List(ctx context.Context, limit int) ([]*Trip, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.store.List(ctx, limit)
}

func (s *Service) PDF(ctx context.Context, id string) ([]byte, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return RenderPDF(t)
}
