package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func goaBrief() TripBrief {
	return TripBrief{
		Destination: "Goa",
		StartDate:   "2025-12-01",
		EndDate:     "2025-12-03",
		Budget:      25000,
		Currency:    "INR",
		Theme:       "Adventure",
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt(goaBrief()), BuildPrompt(goaBrief()))
}

func TestBuildPrompt_Text(t *testing.T) {
	want := "Create a travel itinerary for Goa. Dates: 2025-12-01 to 2025-12-03. Budget: INR 25000. Theme: Adventure." +
		" Include hidden gems, local cuisine, and authentic experiences." +
		" For each day, provide: activities (array of strings), nearest hospital, nearest pharmacy, a travel tip." +
		` Keep JSON format strictly: {"days":[{"day":1,"activities":[],"hospital":"","pharmacy":"","tip":""}]}`

	assert.Equal(t, want, BuildPrompt(goaBrief()))
}

func TestBuildPrompt_Interests(t *testing.T) {
	b := goaBrief()
	b.Budget = 12500.5
	b.Interests = []string{"surfing", " ", "street food"}

	p := BuildPrompt(b)

	assert.Contains(t, p, "Budget: INR 12500.5.")
	assert.Contains(t, p, "Interests: surfing, street food.")
	assert.Equal(t, 1, strings.Count(p, `"days"`))
}
