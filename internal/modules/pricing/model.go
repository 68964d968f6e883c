// README: Rate card for the simulated booking path (flight legs, hotel nights, airport transfer).
package pricing

// RateCard holds per-traveler leg fares at Economy, the hotel rate at BaseRating stars,
// and the flat airport transfer fare. Amounts are whole currency units.
type RateCard struct {
	Currency         string
	OutboundFare     int64
	ReturnFare       int64
	HotelNightly     int64
	BaseRating       int
	TransferFare     int64
	ClassMultipliers map[string]float64
}

func DefaultRateCard() RateCard {
	return RateCard{
		Currency:     "INR",
		OutboundFare: 5200,
		ReturnFare:   5100,
		HotelNightly: 2800,
		BaseRating:   3,
		TransferFare: 800,
		ClassMultipliers: map[string]float64{
			"economy":         1,
			"premium economy": 1.5,
			"business":        2.5,
			"first":           4,
		},
	}
}

// TripQuote is the input to an estimate.
type TripQuote struct {
	Travelers   int
	FlightClass string
	HotelRating int
	Nights      int
}

// Estimate is a priced TripQuote.
type Estimate struct {
	Travelers           int
	OutboundPerTraveler int64
	ReturnPerTraveler   int64
	Flights             int64
	HotelRating         int
	PricePerNight       int64
	Nights              int
	Hotel               int64
	Transfer            int64
	Activities          int64
	Currency            string
}
