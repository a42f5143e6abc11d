// Package handler exposes the storefront engine as a JSON API.
package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/store"
)

// Handler serves the storefront API over the shared in-memory store.
type Handler struct {
	store    *store.Store
	logger   zerolog.Logger
	validate *validator.Validate
}

// New creates a Handler.
func New(s *store.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		store:    s,
		logger:   logger,
		validate: validator.New(),
	}
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// HTTPErrorHandler renders every error as a structured JSON body. Internal
// error details never reach the client.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := domain.ErrorCode(err)
		message := domain.ErrorMessage(err)
		status := ErrorCodeToHTTPStatus(code)

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			code = domain.EINVALID
			if status >= 500 {
				code = domain.EINTERNAL
			}
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		evt := logger.Info()
		if status >= 500 {
			evt = logger.Error()
		}
		evt.
			Err(err).
			Str("code", code).
			Int("status", status).
			Str("path", c.Request().URL.Path).
			Msg("request failed")

		writeErr := c.JSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

// bind decodes and validates a request body.
func (h *Handler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("request.bind", "Malformed request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return domain.Invalid("request.validate", err.Error())
	}
	return nil
}
