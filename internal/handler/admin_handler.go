package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/middleware"
	"github.com/liveartfest/ticketing/internal/service"
)

type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/admins/", h.ListAdmins, auth, middleware.RequireAdmin)
	e.POST("/admins/", h.PromoteAdmin, auth, middleware.RequireAdmin)
	e.DELETE("/admins/:id/", h.DemoteAdmin, auth, middleware.RequireAdmin)
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.svc.ListAdmins(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.UserResponse, len(admins))
	for i, u := range admins {
		resp[i] = dto.ToUserResponse(&u)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) PromoteAdmin(c echo.Context) error {
	var req dto.PromoteAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EmailAddress == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "emailAddress is required")
	}

	if err := h.svc.PromoteAdmin(c.Request().Context(), req.EmailAddress); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "success"})
}

func (h *AdminHandler) DemoteAdmin(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	caller := middleware.ClaimsFrom(c)
	if err := h.svc.DemoteAdmin(c.Request().Context(), id, caller.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDemotion):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "success"})
}
