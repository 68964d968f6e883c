package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/modules/trips"
)

type TripHandler struct {
	trips *trips.Service
}

func NewTripHandler(svc *trips.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

// Create handles POST /v1/trips.
func (h *TripHandler) Create(c *gin.Context) {
	var cmd trips.CreateTripCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if uid := middleware.CallerUID(c); uid != "" {
		cmd.OwnerID = uid
	}
	id, err := h.trips.Create(c.Request.Context(), cmd)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /v1/trips?limit=.
func (h *TripHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	list, err := h.trips.List(c.Request.Context(), limit)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": list})
}

func (h *TripHandler) Get(c *gin.Context) {
	t, err := h.trips.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// PDF handles GET /v1/trips/:id/pdf.
func (h *TripHandler) PDF(c *gin.Context) {
	id := c.Param("id")
	out, err := h.trips.PDF(c.Request.Context(), id)
	if err != nil {
		writeTripError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", id+".pdf"))
	c.Data(http.StatusOK, "application/pdf", out)
}
