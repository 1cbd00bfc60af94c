package handler

import (
	"net/http"

	"medialert/internal/application/dto"
	"medialert/internal/application/service"
	"medialert/internal/interfaces/api/middleware"
	"medialert/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves login and profile endpoints.
type AuthHandler struct {
	userService service.UserService
	log         logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService service.UserService, log logger.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, log: log}
}

// Login signs the user in, creating the account on first use.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.userService.SignInOrSignUp(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, resp)
}

// Profile returns the signed-in user's profile.
func (h *AuthHandler) Profile(c echo.Context) error {
	resp, err := h.userService.GetProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}
