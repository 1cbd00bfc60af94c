package handler

import (
	"errors"
	"net/http"

	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

var statusBySentinel = []struct {
	err    error
	status int
}{
	{appErrors.ErrValidation, http.StatusBadRequest},
	{appErrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{appErrors.ErrUnauthorized, http.StatusUnauthorized},
	{appErrors.ErrUserNotFound, http.StatusNotFound},
	{appErrors.ErrReminderNotFound, http.StatusNotFound},
	{appErrors.ErrRefillNotFound, http.StatusNotFound},
	{appErrors.ErrDosageNotFound, http.StatusNotFound},
	{appErrors.ErrNoDueReminder, http.StatusConflict},
	{appErrors.ErrRateLimited, http.StatusTooManyRequests},
	{appErrors.ErrSuggestionUnavailable, http.StatusServiceUnavailable},
	{appErrors.ErrSuggestionFailed, http.StatusBadGateway},
}

// respondError maps application errors to HTTP responses. Unknown and storage errors
// become 500 without leaking details.
func respondError(c echo.Context, log logger.Logger, err error) error {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			msg := s.err.Error()
			if s.status == http.StatusBadRequest {
				msg = err.Error()
			}
			return c.JSON(s.status, errorResponse{Error: msg})
		}
	}
	log.Error("Request failed", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: appErrors.ErrInternalServer.Error()})
}

// bindAndValidate decodes the body into req and runs the registered validator.
// Failures are returned as 400 HTTP errors.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// HTTPErrorHandler renders echo errors with the same body as respondError.
func HTTPErrorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := appErrors.ErrInternalServer.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		} else {
			log.Error("Unhandled request error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse{Error: msg})
		}
		if err != nil {
			log.Error("Failed to write error response", err)
		}
	}
}
