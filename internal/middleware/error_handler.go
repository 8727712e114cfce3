package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ErrorHandler renders every error as {"message": ...} JSON. Lookups that
// expected exactly one row surface as 404 rather than 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if errors.Is(err, gorm.ErrRecordNotFound) {
		code = http.StatusNotFound
		msg = "not found"
	}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
