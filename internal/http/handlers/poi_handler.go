package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/maps"
)

type POISearcher interface {
	SearchPOIs(ctx context.Context, city string, categories []string) (map[string][]maps.POI, error)
}

type POIHandler struct {
	places POISearcher
}

// NewPOIHandler accepts a nil searcher when no Maps key is configured.
func NewPOIHandler(places POISearcher) *POIHandler {
	return &POIHandler{places: places}
}

// Search handles GET /v1/pois?city=&categories=.
func (h *POIHandler) Search(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		writeError(c, http.StatusBadRequest, "missing city")
		return
	}
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "places search not configured")
		return
	}
	var categories []string
	if raw := c.Query("categories"); raw != "" {
		categories = strings.Split(raw, ",")
	}

	pois, err := h.places.SearchPOIs(c.Request.Context(), city, categories)
	if err != nil {
		writeError(c, http.StatusBadGateway, "places search failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"city": city, "pois": pois})
}
