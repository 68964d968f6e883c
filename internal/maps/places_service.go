package maps

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"googlemaps.github.io/maps"
)

const (
	// DefaultPerCategory is how many places are kept for each category.
	DefaultPerCategory = 6
	searchRegion       = "in"
)

// DefaultCategories are searched when the caller names none.
var DefaultCategories = []string{"heritage", "food", "nightlife"}

// POI is a simplified Places text-search result.
type POI struct {
	PlaceID string   `json:"placeId"`
	Name    string   `json:"name"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Address string   `json:"address"`
	Rating  float32  `json:"rating"`
	Types   []string `json:"types"`
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client      *maps.Client
	perCategory int
}

// NewPlacesService creates a new PlacesService with the given API Key. Extra client options
// (a base URL for tests, an HTTP client) are passed through.
func NewPlacesService(apiKey string, opts ...maps.ClientOption) (*PlacesService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, perCategory: DefaultPerCategory}, nil
}

// SearchPOIs runs one "<city> <category>" text search per category and groups the top results.
// A category whose search fails comes back empty; the call only fails when every search failed.
func (s *PlacesService) SearchPOIs(ctx context.Context, city string, categories []string) (map[string][]POI, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}
	categories = normalizeCategories(categories)

	var (
		mu      sync.Mutex
		out     = make(map[string][]POI, len(categories))
		lastErr error
		failed  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(3)
	for _, cat := range categories {
		g.Go(func() error {
			pois, err := s.search(gctx, city+" "+cat)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				lastErr = err
				pois = []POI{}
			}
			out[cat] = pois
			return nil
		})
	}
	_ = g.Wait()

	if failed == len(categories) {
		return nil, fmt.Errorf("places api error: %w", lastErr)
	}
	return out, nil
}

func (s *PlacesService) search(ctx context.Context, query string) ([]POI, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:  query,
		Region: searchRegion,
	})
	if err != nil {
		return nil, err
	}

	results := make([]POI, 0, s.perCategory)
	for _, r := range resp.Results {
		results = append(results, POI{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
			Address: r.FormattedAddress,
			Rating:  r.Rating,
			Types:   r.Types,
		})
		if len(results) >= s.perCategory {
			break
		}
	}
	return results, nil
}

func normalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return DefaultCategories
	}
	return out
}
