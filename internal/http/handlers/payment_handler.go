package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/modules/order"
	"tripplanner/internal/modules/payment"
)

type Payer interface {
	Pay(ctx context.Context, req payment.PayRequest) (order.Order, error)
}

type PaymentHandler struct {
	payments Payer
}

func NewPaymentHandler(payments Payer) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Pay handles POST /v1/pay.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req payment.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.UserID = middleware.CallerUID(c)

	ord, err := h.payments.Pay(c.Request.Context(), req)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, ord)
}
