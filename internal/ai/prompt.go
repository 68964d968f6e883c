package ai

import (
	"strconv"
	"strings"
)

const responseSchema = `{"days":[{"day":1,"activities":[],"hospital":"","pharmacy":"","tip":""}]}`

// BuildPrompt renders a brief into the generation prompt. It is a pure function:
// identical briefs produce byte-identical prompts.
func BuildPrompt(b TripBrief) string {
	currency := b.Currency
	if currency == "" {
		currency = "INR"
	}

	var sb strings.Builder
	sb.WriteString("Create a travel itinerary for ")
	sb.WriteString(b.Destination)
	sb.WriteString(". Dates: ")
	sb.WriteString(b.StartDate)
	sb.WriteString(" to ")
	sb.WriteString(b.EndDate)
	sb.WriteString(". Budget: ")
	sb.WriteString(currency)
	sb.WriteString(" ")
	sb.WriteString(strconv.FormatFloat(b.Budget, 'f', -1, 64))
	sb.WriteString(". Theme: ")
	sb.WriteString(b.Theme)
	sb.WriteString(".")
	if interests := compact(b.Interests); len(interests) > 0 {
		sb.WriteString(" Interests: ")
		sb.WriteString(strings.Join(interests, ", "))
		sb.WriteString(".")
	}
	sb.WriteString(" Include hidden gems, local cuisine, and authentic experiences.")
	sb.WriteString(" For each day, provide: activities (array of strings), nearest hospital, nearest pharmacy, a travel tip.")
	sb.WriteString(" Keep JSON format strictly: ")
	sb.WriteString(responseSchema)
	return sb.String()
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
