package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/service"
)

type AuthHandler struct {
	svc service.UserService
}

func NewAuthHandler(svc service.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/", h.Authenticate)
}

func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req dto.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EmailAddress == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "emailAddress and password are required")
	}

	user, token, err := h.svc.Authenticate(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  token,
		EmailAddress: user.EmailAddress,
		UserID:       user.ID,
		IsAdmin:      user.IsAdmin,
	})
}
