package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request with method, route, status, and
// duration. Place it after RequestID so the id is available.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()

			if err = next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			evt := logger.Info()
			if status >= 500 {
				evt = logger.Error()
			}

			evt.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Str("request_id", GetRequestID(c)).
				Msg("request")

			return err
		}
	}
}
