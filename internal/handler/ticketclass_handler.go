package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/middleware"
	"github.com/liveartfest/ticketing/internal/service"
)

type TicketClassHandler struct {
	svc service.CatalogService
}

func NewTicketClassHandler(svc service.CatalogService) *TicketClassHandler {
	return &TicketClassHandler{svc: svc}
}

func (h *TicketClassHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/ticketClasses/", h.CreateTicketClass, auth, middleware.RequireAdmin)
	e.GET("/ticketClasses/", h.ListTicketClasses)
}

func (h *TicketClassHandler) CreateTicketClass(c echo.Context) error {
	var req dto.CreateTicketClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if req.Price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	class, err := h.svc.CreateTicketClass(c.Request().Context(), req.Description, req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToTicketClassResponse(class))
}

func (h *TicketClassHandler) ListTicketClasses(c echo.Context) error {
	classes, err := h.svc.ListTicketClasses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TicketClassResponse, len(classes))
	for i := range classes {
		resp[i] = dto.ToTicketClassResponse(&classes[i])
	}
	return c.JSON(http.StatusOK, resp)
}
