package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/users"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles user registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to register user", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles credential login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if domainerrors.IsUnauthorized(err) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to log in user", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
