package handler

import (
	"net/http"

	"medialert/internal/application/dto"
	"medialert/internal/application/service"
	"medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler serves reminder CRUD and the due/acknowledge workflow.
type ReminderHandler struct {
	reminderService service.ReminderService
	alertService    service.AlertService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, alertService service.AlertService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		alertService:    alertService,
		log:             log,
	}
}

// List returns the user's reminders ordered by time.
func (h *ReminderHandler) List(c echo.Context) error {
	list, err := h.reminderService.ListReminders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create adds a reminder.
func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.reminderService.CreateReminder(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Delete removes a reminder.
func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.reminderService.DeleteReminder(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Due returns the reminder currently due, or 204 when none is.
func (h *ReminderHandler) Due(c echo.Context) error {
	due, err := h.alertService.Due(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if due == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, due)
}

// Acknowledge dismisses the due reminder and reports what changed.
func (h *ReminderHandler) Acknowledge(c echo.Context) error {
	resp, err := h.alertService.Acknowledge(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}
