package handler

import (
	"net/http"

	"medialert/internal/application/dto"
	"medialert/internal/application/service"
	"medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FeedbackHandler accepts user feedback.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	log             logger.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService service.FeedbackService, log logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService, log: log}
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req dto.FeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.feedbackService.Submit(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}
