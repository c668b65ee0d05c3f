package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// CORS allows cross-origin requests only from a fixed allow-list of origins.
// Requests from other origins get no Access-Control-Allow-Origin header and
// their preflights are answered without any grant.
func CORS(allowOrigins []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			respHeader := c.Response().Header()
			respHeader.Set("Vary", "Origin")

			origin := c.Request().Header.Get("Origin")
			if origin == "" || !slices.Contains(allowOrigins, origin) {
				if c.Request().Method == http.MethodOptions {
					return c.NoContent(http.StatusNoContent)
				}
				return next(c)
			}

			respHeader.Set("Access-Control-Allow-Origin", origin)
			if c.Request().Method == http.MethodOptions {
				// `*` only may not cover Authorization header in Safari 12
				respHeader.Set("Access-Control-Allow-Headers", "*, Authorization")
				respHeader.Set("Access-Control-Allow-Methods", "OPTIONS, POST, PUT, DELETE, GET, PATCH, HEAD")
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
