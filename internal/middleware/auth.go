package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/liveartfest/ticketing/internal/auth"
)

const claimsKey = "authClaims"

// RequireAuth parses the bearer token and stores its claims on the context.
func RequireAuth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin rejects callers whose token does not carry the admin flag.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ClaimsFrom(c).IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// ClaimsFrom returns the claims stored by RequireAuth. It must only be called
// on routes behind that middleware.
func ClaimsFrom(c echo.Context) *auth.Claims {
	return c.Get(claimsKey).(*auth.Claims)
}

// SetClaims injects claims directly, for handler tests.
func SetClaims(c echo.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}

// CanActFor reports whether the caller may act on resources owned by userID:
// the owner themselves, or any admin.
func CanActFor(c echo.Context, userID uint) bool {
	claims := ClaimsFrom(c)
	return claims.UserID == userID || claims.IsAdmin
}
