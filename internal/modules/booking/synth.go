package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/modules/order"
	"tripplanner/internal/modules/pricing"
)

const (
	defaultOrigin      = "BLR"
	defaultDestination = "GOI"
	defaultClass       = "Economy"
	flightVendor       = "IndiGo"
	transferVendor     = "CityCabs"
	dateLayout         = "2006-01-02"
	secondsPerDay      = 24 * 60 * 60
)

func NewBookingID() string {
	return "BK-" + strings.ToUpper(uuid.NewString())
}

// Nights counts calendar days between the trip dates, at least one. Unparsable dates count as one night.
func Nights(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 1
	}
	return max(int((end.Unix()-start.Unix())/secondsPerDay), 1)
}

// Synthesize derives a confirmed booking from the rate card alone. Apart from the generated
// ids, identical requests give identical bookings.
func Synthesize(req Request, rates *pricing.Service) Booking {
	d := req.Details
	class := orDefault(d.FlightClass, defaultClass)
	origin := orDefault(d.Origin, defaultOrigin)
	destination := orDefault(d.Destination, defaultDestination)
	est := rates.Estimate(pricing.TripQuote{
		Travelers:   d.Travelers.Int(),
		FlightClass: class,
		HotelRating: d.HotelRating.Int(),
		Nights:      Nights(d.StartDate, d.EndDate),
	})

	parts := Parts{
		BookingID: NewBookingID(),
		Flights: []Flight{
			{
				Vendor:           flightVendor,
				From:             origin,
				To:               destination,
				Date:             d.StartDate,
				Class:            class,
				PricePerTraveler: est.OutboundPerTraveler,
				Price:            est.OutboundPerTraveler * int64(est.Travelers),
			},
			{
				Vendor:           flightVendor,
				From:             destination,
				To:               origin,
				Date:             d.EndDate,
				Class:            class,
				PricePerTraveler: est.ReturnPerTraveler,
				Price:            est.ReturnPerTraveler * int64(est.Travelers),
			},
		},
		Hotel: Hotel{
			Name:          fmt.Sprintf("%d-Star City Hotel", est.HotelRating),
			Rating:        est.HotelRating,
			CheckIn:       d.StartDate,
			CheckOut:      d.EndDate,
			Nights:        est.Nights,
			PricePerNight: est.PricePerNight,
			Price:         est.Hotel,
		},
		Transport: []Transport{
			{Type: "Airport Pickup", Vendor: transferVendor, Date: d.StartDate, Price: est.Transfer},
		},
		ActivitiesTotal: est.Activities,
	}

	ord := order.Order{OrderID: order.NewID(), Status: order.StatusConfirmed}
	return Assemble(SourceSimulated, est.Currency, parts, ord, req)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
