// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"tripplanner/internal/modules/payment"
	"tripplanner/internal/modules/trips"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trips.ErrInvalid):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trips.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrBadRequest):
		writeError(c, http.StatusBadRequest, "bookingId and a positive amount are required")
	default:
		writeError(c, http.StatusBadGateway, "payment provider unavailable")
	}
}
