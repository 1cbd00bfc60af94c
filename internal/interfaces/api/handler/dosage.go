package handler

import (
	"net/http"

	"medialert/internal/application/dto"
	"medialert/internal/application/service"
	"medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DosageHandler serves the dosage log.
type DosageHandler struct {
	dosageService service.DosageService
	log           logger.Logger
}

// NewDosageHandler creates a new DosageHandler.
func NewDosageHandler(dosageService service.DosageService, log logger.Logger) *DosageHandler {
	return &DosageHandler{dosageService: dosageService, log: log}
}

func (h *DosageHandler) List(c echo.Context) error {
	list, err := h.dosageService.ListDosages(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *DosageHandler) Create(c echo.Context) error {
	var req dto.DosageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.dosageService.CreateDosage(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *DosageHandler) Update(c echo.Context) error {
	var req dto.DosageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.dosageService.UpdateDosage(c.Request().Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DosageHandler) Delete(c echo.Context) error {
	if err := h.dosageService.DeleteDosage(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
