package itinerary

import (
	"github.com/pkg/errors"

	"tripplanner/internal/ai"
	"tripplanner/internal/types"
	"tripplanner/internal/weather"
)

// Merge zips the forecast into the model's days by index and stamps request metadata.
// Days beyond the forecast get the WeatherUnavailable sentinel.
func Merge(draft *ai.DraftItinerary, forecast []weather.ForecastDay, req TripRequest) (Itinerary, error) {
	if draft == nil || len(draft.Days) == 0 {
		return Itinerary{}, errors.Wrap(types.ErrParseFailure, "merge: draft has no days")
	}
	days := make([]Day, len(draft.Days))
	for i, d := range draft.Days {
		w := WeatherUnavailable
		if i < len(forecast) {
			w = forecast[i].Summary()
		}
		days[i] = NewDay(i, d.Activities, d.Hospital, d.Pharmacy, d.Tip, w)
	}
	return stamp(days, req, false), nil
}
