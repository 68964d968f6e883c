// README: Itinerary request/response types.
package itinerary

import (
	"slices"

	"tripplanner/internal/types"
)

// TripRequest is the accepted /plan body. It is not modified after decoding.
type TripRequest struct {
	Destination string           `json:"destination"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Budget      types.Number     `json:"budget"`
	Theme       string           `json:"theme"`
	Interests   types.StringList `json:"interests,omitempty"`
}

// Day is one itinerary day. All six fields are always populated.
type Day struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
	Hospital   string   `json:"hospital"`
	Pharmacy   string   `json:"pharmacy"`
	Tip        string   `json:"tip"`
	Weather    string   `json:"weather"`
}

// Meta echoes the request fields back to the caller.
type Meta struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Theme       string  `json:"theme"`
}

// Itinerary is the /plan response. Degraded is true when the fixed template was served.
type Itinerary struct {
	Days     []Day `json:"days"`
	Meta     Meta  `json:"meta"`
	Degraded bool  `json:"degraded"`
}

// Clone returns a copy that shares no slices with it.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	cp := *it
	if it.Days != nil {
		cp.Days = make([]Day, len(it.Days))
		for i, d := range it.Days {
			d.Activities = slices.Clone(d.Activities)
			cp.Days[i] = d
		}
	}
	return &cp
}
