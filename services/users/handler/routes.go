package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	authHandler   *http.AuthHandler
	beaconHandler *http.BeaconHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all users handlers
func NewHandler(
	authHandler *http.AuthHandler,
	beaconHandler *http.BeaconHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		beaconHandler: beaconHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the users service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Protected mechanic routes
	mechanicGroup := e.Group("/mechanic", middleware.JWT(h.cfg.JWT.Secret))
	mechanicGroup.POST("/availability", h.beaconHandler.UpdateAvailability)
}
