package handler

import (
	"net/http"

	"medialert/internal/application/dto"
	"medialert/internal/application/service"
	"medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RefillHandler serves inventory CRUD.
type RefillHandler struct {
	refillService service.RefillService
	log           logger.Logger
}

// NewRefillHandler creates a new RefillHandler.
func NewRefillHandler(refillService service.RefillService, log logger.Logger) *RefillHandler {
	return &RefillHandler{refillService: refillService, log: log}
}

func (h *RefillHandler) List(c echo.Context) error {
	list, err := h.refillService.ListRefills(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *RefillHandler) Create(c echo.Context) error {
	var req dto.RefillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.refillService.CreateRefill(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *RefillHandler) Update(c echo.Context) error {
	var req dto.RefillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.refillService.UpdateRefill(c.Request().Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RefillHandler) Delete(c echo.Context) error {
	if err := h.refillService.DeleteRefill(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
