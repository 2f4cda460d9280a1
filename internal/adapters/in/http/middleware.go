package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireJSONContentType rejects mutating requests whose body is not declared
// as JSON. GET and DELETE pass through untouched.
func RequireJSONContentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		switch ctx.Request().Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := ctx.Request().Header.Get(echo.HeaderContentType)
			if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
				return ctx.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
					Code:    http.StatusUnsupportedMediaType,
					Message: "Content-Type must be application/json",
				})
			}
		}

		return next(ctx)
	}
}
