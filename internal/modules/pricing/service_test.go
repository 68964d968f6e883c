package pricing

import "testing"

func TestService_Estimate(t *testing.T) {
	s := NewService(DefaultRateCard())

	tests := []struct {
		name         string
		req          TripQuote
		wantFlights  int64
		wantNightly  int64
		wantHotel    int64
		wantTransfer int64
	}{
		{
			name:         "Two travelers, 3 stars, 3 nights",
			req:          TripQuote{Travelers: 2, FlightClass: "Economy", HotelRating: 3, Nights: 3},
			wantFlights:  (5200 + 5100) * 2, // 20600
			wantNightly:  2800,
			wantHotel:    2800 * 3,
			wantTransfer: 800,
		},
		{
			name:         "Zero travelers and nights floor at one",
			req:          TripQuote{},
			wantFlights:  5200 + 5100,
			wantNightly:  2800,
			wantHotel:    2800,
			wantTransfer: 800,
		},
		{
			name: "Business class, 5 stars",
			req:  TripQuote{Travelers: 1, FlightClass: "business", HotelRating: 5, Nights: 2},
			// 5200*2.5 + 5100*2.5 = 13000 + 12750
			wantFlights: 25750,
			// 2800 * 5 / 3 = 4666
			wantNightly:  4666,
			wantHotel:    4666 * 2,
			wantTransfer: 800,
		},
		{
			name:         "Premium economy rounds per leg",
			req:          TripQuote{Travelers: 3, FlightClass: " Premium Economy ", HotelRating: 1, Nights: 4},
			wantFlights:  (7800 + 7650) * 3, // 46350
			wantNightly:  933,
			wantHotel:    933 * 4,
			wantTransfer: 800,
		},
		{
			name:         "Travelers clamp at the maximum",
			req:          TripQuote{Travelers: 1_000_000_000_000_000_000, Nights: 2},
			wantFlights:  (5200 + 5100) * MaxTravelers,
			wantNightly:  2800,
			wantHotel:    2800 * 2,
			wantTransfer: 800,
		},
		{
			name:         "Nights clamp at the maximum",
			req:          TripQuote{Travelers: 1, Nights: 3652058},
			wantFlights:  10300,
			wantNightly:  2800,
			wantHotel:    2800 * MaxNights,
			wantTransfer: 800,
		},
		{
			name:         "Unknown class and out-of-range rating",
			req:          TripQuote{Travelers: 1, FlightClass: "cargo", HotelRating: 9, Nights: 1},
			wantFlights:  10300,
			wantNightly:  4666,
			wantHotel:    4666,
			wantTransfer: 800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Estimate(tt.req)
			if got.Flights != tt.wantFlights {
				t.Errorf("Flights = %v, want %v", got.Flights, tt.wantFlights)
			}
			if got.PricePerNight != tt.wantNightly {
				t.Errorf("PricePerNight = %v, want %v", got.PricePerNight, tt.wantNightly)
			}
			if got.Hotel != tt.wantHotel {
				t.Errorf("Hotel = %v, want %v", got.Hotel, tt.wantHotel)
			}
			if got.Transfer != tt.wantTransfer {
				t.Errorf("Transfer = %v, want %v", got.Transfer, tt.wantTransfer)
			}
			if got.Activities != 0 {
				t.Errorf("Activities = %v, want 0", got.Activities)
			}
		})
	}
}

func TestService_NightlyRateIsProportional(t *testing.T) {
	s := NewService(DefaultRateCard())
	for rating := 1; rating < 5; rating++ {
		if s.NightlyRate(rating) >= s.NightlyRate(rating+1) {
			t.Errorf("rate for %d stars should be below %d stars", rating, rating+1)
		}
	}
}
