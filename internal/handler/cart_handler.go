package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/middleware"
	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/service"
)

type CartHandler struct {
	svc service.CartService
}

func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/users/:id/cart/", h.AddToCart, auth)
	e.GET("/users/:id/cart/", h.GetCart, auth)
	e.DELETE("/users/:id/cart/:purchasableId/", h.RemoveCartItem, auth)
	e.GET("/users/:id/purchased/", h.GetPurchased, auth)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	if !middleware.CanActFor(c, userID) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.AddToCart(c.Request().Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrClassNotAllowed),
			errors.Is(err, service.ErrEventMismatch):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPurchasableNotFound),
			errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "added to cart"})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	if !middleware.CanActFor(c, userID) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	view, err := h.svc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.CartResponse{
		TicketSubTotal: view.Totals.SubTotal.InexactFloat64(),
		Tax:            view.Totals.Tax.InexactFloat64(),
		TotalPrice:     view.Totals.Total.InexactFloat64(),
		Purchasables:   toCartPurchasables(view.Groups),
	})
}

func (h *CartHandler) GetPurchased(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	if !middleware.CanActFor(c, userID) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	groups, err := h.svc.GetPurchased(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.PurchasedResponse{Purchasables: toCartPurchasables(groups)})
}

func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	if !middleware.CanActFor(c, userID) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	purchasableID, err := strconv.ParseUint(c.Param("purchasableId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid purchasable id")
	}

	if err := h.svc.RemoveCartItem(c.Request().Context(), userID, uint(purchasableID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "removed from cart"})
}

func toCartPurchasables(groups []service.CartGroup) []dto.CartPurchasableResponse {
	resp := make([]dto.CartPurchasableResponse, len(groups))
	for i, group := range groups {
		resp[i] = dto.CartPurchasableResponse{
			PurchasableResponse: dto.ToPurchasableResponse(&group.Purchasable),
			Events:              dto.ToEventResponses(group.Events),
			Tickets:             toCartTickets(group.Tickets),
		}
	}
	return resp
}

func toCartTickets(tickets []models.Ticket) []dto.CartTicketResponse {
	resp := make([]dto.CartTicketResponse, len(tickets))
	for i, t := range tickets {
		tr := dto.CartTicketResponse{
			ID:           t.ID,
			IsPurchased:  t.IsPurchased,
			CreateDate:   t.CreateDate,
			PurchaseDate: t.PurchaseDate,
			Events:       make([]dto.EventResponse, 0, len(t.Events)),
		}
		if t.TicketClass != nil {
			tr.TicketClass = dto.ToTicketClassResponse(t.TicketClass)
		}
		for _, link := range t.Events {
			if link.Event != nil {
				tr.Events = append(tr.Events, dto.ToEventResponse(link.Event))
			}
		}
		resp[i] = tr
	}
	return resp
}
