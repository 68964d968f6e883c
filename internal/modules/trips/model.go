// README: Shared trips: a saved itinerary with an optional booking, stored in Postgres, Redis or memory.
package trips

import (
	"time"

	"github.com/pkg/errors"

	"tripplanner/internal/modules/booking"
	"tripplanner/internal/modules/itinerary"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var (
	ErrNotFound = errors.New("trip not found")
	ErrInvalid  = errors.New("invalid trip")
)

type Trip struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	OwnerID   string               `json:"ownerId,omitempty"`
	Itinerary *itinerary.Itinerary `json:"itinerary"`
	Booking   *booking.Booking     `json:"booking,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// CreateTripCommand is the body of a share request.
type CreateTripCommand struct {
	Title     string               `json:"title"`
	OwnerID   string               `json:"ownerId"`
	Itinerary *itinerary.Itinerary `json:"itinerary"`
	Booking   *booking.Booking     `json:"booking"`
}
