package itinerary

type templateDay struct {
	activities []string
	hospital   string
	pharmacy   string
	tip        string
}

var fallbackTemplate = [...]templateDay{
	{
		activities: []string{"Check-in", "City walk", "Local dinner"},
		hospital:   "City General Hospital",
		pharmacy:   "Main St Pharmacy",
		tip:        "Carry water & sunscreen.",
	},
	{
		activities: []string{"Beach morning", "Museum", "Seafood shack"},
		hospital:   "Harbor Hospital",
		pharmacy:   "Harbor Meds",
		tip:        "Book tickets in advance.",
	},
	{
		activities: []string{"Market", "Sunset point", "Cafe crawl"},
		hospital:   "Central Clinic",
		pharmacy:   "Wellness Chemist",
		tip:        "Use public transport when possible.",
	},
}

// Fallback builds the fixed three-day itinerary. It makes no external calls and its output
// depends on req only through meta.
func Fallback(req TripRequest) Itinerary {
	days := make([]Day, len(fallbackTemplate))
	for i, t := range fallbackTemplate {
		days[i] = NewDay(i, t.activities, t.hospital, t.pharmacy, t.tip, WeatherUnavailable)
	}
	return stamp(days, req, true)
}
