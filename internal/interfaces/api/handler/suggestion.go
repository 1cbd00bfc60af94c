package handler

import (
	"net/http"

	"medialert/internal/application/dto"
	"medialert/internal/application/service"
	"medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SuggestionHandler serves AI refill suggestions.
type SuggestionHandler struct {
	suggestionService service.SuggestionService
	log               logger.Logger
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(suggestionService service.SuggestionService, log logger.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService, log: log}
}

func (h *SuggestionHandler) Refill(c echo.Context) error {
	var req dto.SuggestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.suggestionService.SuggestRefill(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}
