package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{fmt.Errorf("%w: remaining quantity cannot be negative", appErrors.ErrValidation), http.StatusBadRequest, "remaining quantity cannot be negative"},
		{appErrors.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect email or password"},
		{appErrors.ErrReminderNotFound, http.StatusNotFound, "reminder not found"},
		{appErrors.ErrNoDueReminder, http.StatusConflict, "no reminder is currently due"},
		{appErrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
		{appErrors.ErrSuggestionUnavailable, http.StatusServiceUnavailable, "not configured"},
		{fmt.Errorf("%w: timeout", appErrors.ErrSuggestionFailed), http.StatusBadGateway, "could not get a suggestion"},
		{fmt.Errorf("%w: connection reset", appErrors.ErrDatabaseOperation), http.StatusInternalServerError, "internal server error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, respondError(c, logger.NewNop(), tc.err))
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), tc.body)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	}
}
