package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header name for request ID.
const RequestIDHeader = "X-Request-ID"

const requestIDContextKey = "request_id"

// RequestID assigns each request a unique id. If the request already carries
// an X-Request-ID header (from a load balancer, etc.) that value is kept.
// The id is echoed in the response headers and stored on the echo context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			c.Response().Header().Set(RequestIDHeader, id)
			c.Set(requestIDContextKey, id)
			return next(c)
		}
	}
}

// GetRequestID retrieves the request id set by RequestID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}
