// README: Itinerary and booking handlers. Both always answer 200 with a complete body.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/modules/booking"
	"tripplanner/internal/modules/itinerary"
)

type Planner interface {
	Plan(ctx context.Context, req itinerary.TripRequest) itinerary.Itinerary
}

type Booker interface {
	Book(ctx context.Context, req booking.Request) booking.Booking
}

type PlanHandler struct {
	planner Planner
	booker  Booker
}

func NewPlanHandler(planner Planner, booker Booker) *PlanHandler {
	return &PlanHandler{planner: planner, booker: booker}
}

// Plan handles POST /plan. Fields of the wrong type decode as empty and the rest are kept;
// a body that is not JSON at all is planned as an empty request.
func (h *PlanHandler) Plan(c *gin.Context) {
	var req itinerary.TripRequest
	_ = c.ShouldBindJSON(&req)
	writeJSON(c, http.StatusOK, h.planner.Plan(c.Request.Context(), req))
}

// Book handles POST /book. The verified caller is used when the body names no user.
func (h *PlanHandler) Book(c *gin.Context) {
	var req booking.Request
	_ = c.ShouldBindJSON(&req)
	if req.UserID == "" {
		req.UserID = middleware.CallerUID(c)
	}
	writeJSON(c, http.StatusOK, h.booker.Book(c.Request.Context(), req))
}
