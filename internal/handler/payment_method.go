package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AllexanderGM/feeling-sub002/internal/repository"
)

// PaymentMethodHandler serves the payment-method reference data.
type PaymentMethodHandler struct {
	Payments *repository.PaymentRepo
}

func NewPaymentMethodHandler(payments *repository.PaymentRepo) *PaymentMethodHandler {
	if payments == nil {
		panic("nil repository passed to NewPaymentMethodHandler")
	}
	return &PaymentMethodHandler{Payments: payments}
}

// ListMethods handles GET /v1/payment-methods.
func (h *PaymentMethodHandler) ListMethods(c echo.Context) error {
	methods, err := h.Payments.ListMethods(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payment methods"})
	}
	items := make([]echo.Map, 0, len(methods))
	for _, m := range methods {
		item := echo.Map{"id": m.ID, "name": m.Name}
		if m.Description != nil {
			item["description"] = *m.Description
		}
		items = append(items, item)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
