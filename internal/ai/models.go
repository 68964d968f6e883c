package ai

// DraftItinerary is the structure the model is asked to return.
type DraftItinerary struct {
	// Days must be present and non-empty for the draft to be usable.
	Days []DraftDay `json:"days"`
}

// DraftDay is one day as authored by the model. Any field may be missing or empty;
// the merger substitutes placeholders.
type DraftDay struct {
	// Day is the model's own numbering. It is not trusted; days are renumbered by position.
	Day int `json:"day"`

	Activities []string `json:"activities"`

	// Hospital and Pharmacy are the nearest facilities the model suggests for the day's area.
	Hospital string `json:"hospital"`
	Pharmacy string `json:"pharmacy"`

	Tip string `json:"tip"`
}

// TripBrief carries the trip parameters rendered into the prompt.
type TripBrief struct {
	Destination string
	StartDate   string
	EndDate     string
	Budget      float64
	Currency    string
	Theme       string
	Interests   []string
}
