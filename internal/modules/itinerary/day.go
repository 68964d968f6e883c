package itinerary

import "strings"

const (
	WeatherUnavailable = "Weather unavailable"

	placeholderActivity = "Explore at your own pace"
	placeholderHospital = "Ask your hotel for the nearest hospital"
	placeholderPharmacy = "Ask your hotel for the nearest pharmacy"
	placeholderTip      = "Keep a copy of your travel documents."
)

// NewDay is the single constructor for Day used by both the merged and the fallback paths.
// index is 0-based; blank fields get placeholder text.
func NewDay(index int, activities []string, hospital, pharmacy, tip, weather string) Day {
	acts := make([]string, 0, len(activities))
	for _, a := range activities {
		if a = strings.TrimSpace(a); a != "" {
			acts = append(acts, a)
		}
	}
	if len(acts) == 0 {
		acts = append(acts, placeholderActivity)
	}
	return Day{
		Day:        index + 1,
		Activities: acts,
		Hospital:   orDefault(hospital, placeholderHospital),
		Pharmacy:   orDefault(pharmacy, placeholderPharmacy),
		Tip:        orDefault(tip, placeholderTip),
		Weather:    orDefault(weather, WeatherUnavailable),
	}
}

// stamp attaches request metadata. Both paths finish here.
func stamp(days []Day, req TripRequest, degraded bool) Itinerary {
	return Itinerary{
		Days: days,
		Meta: Meta{
			Destination: req.Destination,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Budget:      float64(req.Budget),
			Theme:       req.Theme,
		},
		Degraded: degraded,
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
