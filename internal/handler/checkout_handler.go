package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/middleware"
	"github.com/liveartfest/ticketing/internal/service"
)

type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/checkout/", h.Checkout, auth)
}

// Checkout charges the caller's cart. The card nonce comes from the payment
// form; the buyer is always the authenticated user.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	claims := middleware.ClaimsFrom(c)
	receipt, err := h.svc.Checkout(c.Request().Context(), claims.UserID, claims.EmailAddress, req.Nonce)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPaymentToken), errors.Is(err, service.ErrEmptyCart):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPaymentFailed):
			return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ReceiptResponse{
		Reference:  receipt.Reference,
		PaymentID:  receipt.PaymentID,
		NumTickets: receipt.NumTickets,
		TotalPrice: receipt.Totals.Total.InexactFloat64(),
	})
}
