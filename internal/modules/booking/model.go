// README: Booking request/response types and the shared assembly used by live and simulated bookings.
package booking

import (
	"slices"

	"tripplanner/internal/modules/order"
	"tripplanner/internal/types"
)

const (
	SourceLive      = "live"
	SourceSimulated = "simulated"
)

type Request struct {
	UserID       string  `json:"userId"`
	BookingItems []Item  `json:"bookingItems"`
	Details      Details `json:"details"`
}

// Item is one itinerary day the traveller chose to book.
type Item struct {
	Day        types.Label `json:"day"`
	Activities []string    `json:"activities"`
}

type Details struct {
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Travelers   types.Number `json:"travelers"`
	FlightClass string       `json:"flightClass"`
	HotelRating types.Number `json:"hotelRating"`
}

type Flight struct {
	Vendor           string `json:"vendor"`
	From             string `json:"from"`
	To               string `json:"to"`
	Date             string `json:"date"`
	Class            string `json:"class"`
	PricePerTraveler int64  `json:"pricePerTraveler"`
	Price            int64  `json:"price"`
}

type Hotel struct {
	Name          string `json:"name"`
	Rating        int    `json:"rating"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	Price         int64  `json:"price"`
}

type Transport struct {
	Type   string `json:"type"`
	Vendor string `json:"vendor"`
	Date   string `json:"date"`
	Price  int64  `json:"price"`
}

type Totals struct {
	Flights    int64 `json:"flights"`
	Hotel      int64 `json:"hotel"`
	Transport  int64 `json:"transport"`
	Activities int64 `json:"activities"`
	GrandTotal int64 `json:"grandTotal"`
}

type Booking struct {
	BookingID string      `json:"bookingId"`
	Source    string      `json:"source"`
	Currency  string      `json:"currency"`
	Flights   []Flight    `json:"flights"`
	Hotel     Hotel       `json:"hotel"`
	Transport []Transport `json:"transport"`
	Totals    Totals      `json:"totals"`
	Order     order.Order `json:"order"`
	Items     []Item      `json:"items"`
	Details   Details     `json:"details"`
}

// Clone returns a copy that shares no slices with b.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	cp := *b
	cp.Flights = slices.Clone(b.Flights)
	cp.Transport = slices.Clone(b.Transport)
	if b.Items != nil {
		cp.Items = make([]Item, len(b.Items))
		for i, item := range b.Items {
			item.Activities = slices.Clone(item.Activities)
			cp.Items[i] = item
		}
	}
	return &cp
}

// NewTotals is the only place GrandTotal is computed.
func NewTotals(flights, hotel, transport, activities int64) Totals {
	return Totals{
		Flights:    flights,
		Hotel:      hotel,
		Transport:  transport,
		Activities: activities,
		GrandTotal: flights + hotel + transport + activities,
	}
}

// Parts are the priced components of a booking before totals and the order are attached.
type Parts struct {
	BookingID       string
	Flights         []Flight
	Hotel           Hotel
	Transport       []Transport
	ActivitiesTotal int64
}

// Assemble builds a Booking from its parts. Both the live and the simulated path end here so
// the two cannot drift in shape.
func Assemble(source, currency string, parts Parts, ord order.Order, req Request) Booking {
	var flightSum, transportSum int64
	for _, f := range parts.Flights {
		flightSum += f.Price
	}
	for _, t := range parts.Transport {
		transportSum += t.Price
	}
	totals := NewTotals(flightSum, parts.Hotel.Price, transportSum, parts.ActivitiesTotal)

	ord.Amount = totals.GrandTotal
	if ord.Currency == "" {
		ord.Currency = currency
	}

	flights := parts.Flights
	if flights == nil {
		flights = []Flight{}
	}
	transport := parts.Transport
	if transport == nil {
		transport = []Transport{}
	}
	items := req.BookingItems
	if items == nil {
		items = []Item{}
	}

	return Booking{
		BookingID: parts.BookingID,
		Source:    source,
		Currency:  currency,
		Flights:   flights,
		Hotel:     parts.Hotel,
		Transport: transport,
		Totals:    totals,
		Order:     ord,
		Items:     items,
		Details:   req.Details,
	}
}
