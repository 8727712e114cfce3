package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/middleware"
	"github.com/liveartfest/ticketing/internal/service"
)

type PurchasableHandler struct {
	svc service.CatalogService
}

func NewPurchasableHandler(svc service.CatalogService) *PurchasableHandler {
	return &PurchasableHandler{svc: svc}
}

func (h *PurchasableHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/purchasables/", h.CreatePurchasable, auth, middleware.RequireAdmin)
	e.GET("/purchasables/", h.ListPurchasables)
	e.GET("/dayPasses/", h.ListDayPasses)
	e.GET("/purchasables/:id/", h.GetPurchasable)
	e.PUT("/purchasables/:id/", h.UpdatePurchasable, auth, middleware.RequireAdmin)
	e.DELETE("/purchasables/:id/", h.DeletePurchasable, auth, middleware.RequireAdmin)
}

func (h *PurchasableHandler) CreatePurchasable(c echo.Context) error {
	var req dto.CreatePurchasableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and description are required")
	}

	purchasable, err := h.svc.CreatePurchasable(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidType):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTicketClassNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, dto.ToPurchasableResponse(purchasable))
}

func (h *PurchasableHandler) ListPurchasables(c echo.Context) error {
	items, err := h.svc.ListPurchasables(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toPurchasableListItems(items))
}

func (h *PurchasableHandler) ListDayPasses(c echo.Context) error {
	items, err := h.svc.ListDayPasses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toPurchasableListItems(items))
}

func (h *PurchasableHandler) GetPurchasable(c echo.Context) error {
	id, err := purchasableIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetPurchasable(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "purchasable not found")
	}

	return c.JSON(http.StatusOK, dto.PurchasableDetailResponse{
		PurchasableResponse: dto.ToPurchasableResponse(&detail.Purchasable),
		Events:              dto.ToEventResponses(detail.Events),
		TicketClasses:       dto.ToTicketClassResponses(detail.ClassLinks),
	})
}

func (h *PurchasableHandler) UpdatePurchasable(c echo.Context) error {
	id, err := purchasableIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePurchasableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	purchasable, err := h.svc.UpdatePurchasable(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPurchasableNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidType):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToPurchasableResponse(purchasable))
}

func (h *PurchasableHandler) DeletePurchasable(c echo.Context) error {
	id, err := purchasableIDParam(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeletePurchasable(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrPurchasableNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted purchasable " + c.Param("id")})
}

func toPurchasableListItems(items []service.PurchasableWithEvents) []dto.PurchasableListItem {
	resp := make([]dto.PurchasableListItem, len(items))
	for i, item := range items {
		var startTime *time.Time
		for _, e := range item.Events {
			if startTime == nil || e.StartTime.Before(*startTime) {
				t := e.StartTime
				startTime = &t
			}
		}
		resp[i] = dto.PurchasableListItem{
			PurchasableResponse: dto.ToPurchasableResponse(&item.Purchasable),
			Events:              dto.ToEventResponses(item.Events),
			StartTime:           startTime,
		}
	}
	return resp
}

func purchasableIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid purchasable id")
	}
	return uint(id), nil
}
