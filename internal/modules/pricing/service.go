// README: Pricing service turns trip parameters into a deterministic cost estimate.
package pricing

import (
	"math"
	"strings"
)

const (
	minRating = 1
	maxRating = 5

	MaxTravelers = 50
	MaxNights    = 365
)

type Service struct {
	card RateCard
}

func NewService(card RateCard) *Service {
	if card.BaseRating <= 0 {
		card.BaseRating = DefaultRateCard().BaseRating
	}
	return &Service{card: card}
}

func (s *Service) Currency() string {
	return s.card.Currency
}

// Estimate prices a trip. Travelers are clamped to 1..MaxTravelers and nights to 1..MaxNights;
// the hotel rating is clamped to 1..5 with 0 meaning the base rating.
func (s *Service) Estimate(q TripQuote) Estimate {
	travelers := min(max(q.Travelers, 1), MaxTravelers)
	nights := min(max(q.Nights, 1), MaxNights)
	rating := s.ClampRating(q.HotelRating)

	outbound := s.LegFare(s.card.OutboundFare, q.FlightClass)
	ret := s.LegFare(s.card.ReturnFare, q.FlightClass)
	nightly := s.NightlyRate(rating)

	return Estimate{
		Travelers:           travelers,
		OutboundPerTraveler: outbound,
		ReturnPerTraveler:   ret,
		Flights:             (outbound + ret) * int64(travelers),
		HotelRating:         rating,
		PricePerNight:       nightly,
		Nights:              nights,
		Hotel:               nightly * int64(nights),
		Transfer:            s.card.TransferFare,
		Activities:          0,
		Currency:            s.card.Currency,
	}
}

// LegFare applies the cabin class multiplier; unknown classes price as Economy.
func (s *Service) LegFare(base int64, class string) int64 {
	m, ok := s.card.ClassMultipliers[strings.ToLower(strings.TrimSpace(class))]
	if !ok {
		m = 1
	}
	return int64(math.Round(float64(base) * m))
}

// NightlyRate scales the base nightly rate in proportion to the star rating.
func (s *Service) NightlyRate(rating int) int64 {
	return s.card.HotelNightly * int64(rating) / int64(s.card.BaseRating)
}

func (s *Service) ClampRating(rating int) int {
	switch {
	case rating == 0:
		return s.card.BaseRating
	case rating < minRating:
		return minRating
	case rating > maxRating:
		return maxRating
	}
	return rating
}
