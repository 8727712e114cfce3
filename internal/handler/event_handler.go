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

type EventHandler struct {
	svc service.CatalogService
}

func NewEventHandler(svc service.CatalogService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/events/", h.CreateEvent, auth, middleware.RequireAdmin)
	e.PUT("/events/:id/", h.UpdateEvent, auth, middleware.RequireAdmin)
	e.GET("/events/:id/", h.GetEvent)
	e.GET("/individualEvents/", h.ListIndividualEvents)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and description are required")
	}
	if !req.EndTime.After(req.StartTime) {
		return echo.NewHTTPError(http.StatusBadRequest, "endTime must be after startTime")
	}

	detail, event, err := h.svc.CreateEvent(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPurchasableNotFound),
			errors.Is(err, service.ErrTicketClassNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidType):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, toEventDetailResponse(detail, event))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), uint(id), req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	detail, event, err := h.svc.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	}
	return c.JSON(http.StatusOK, toEventDetailResponse(detail, event))
}

func (h *EventHandler) ListIndividualEvents(c echo.Context) error {
	pairs, err := h.svc.ListIndividualEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	type item struct {
		dto.EventResponse
		Purchasable dto.PurchasableResponse `json:"purchasable"`
	}
	resp := make([]item, len(pairs))
	for i, p := range pairs {
		resp[i] = item{
			EventResponse: dto.ToEventResponse(&p.Event),
			Purchasable:   dto.ToPurchasableResponse(&p.Purchasable),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func toEventDetailResponse(detail *service.PurchasableDetail, event *models.Event) dto.EventDetailResponse {
	return dto.EventDetailResponse{
		EventResponse: dto.ToEventResponse(event),
		Purchasable: dto.PurchasableDetailResponse{
			PurchasableResponse: dto.ToPurchasableResponse(&detail.Purchasable),
			Events:              dto.ToEventResponses(detail.Events),
			TicketClasses:       dto.ToTicketClassResponses(detail.ClassLinks),
		},
	}
}
