package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/rescue/handler/http"
)

// Handler coordinates the HTTP handlers for the rescue service
type Handler struct {
	requestHandler  *http.RequestHandler
	mechanicHandler *http.MechanicHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all rescue handlers
func NewHandler(
	requestHandler *http.RequestHandler,
	mechanicHandler *http.MechanicHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		requestHandler:  requestHandler,
		mechanicHandler: mechanicHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the rescue service routes. All of them
// require authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwt := middleware.JWT(h.cfg.JWT.Secret)

	requestGroup := e.Group("/requests", jwt)
	requestGroup.POST("", h.requestHandler.CreateRequest)
	requestGroup.GET("/mine", h.requestHandler.ListMyRequests)
	requestGroup.GET("/:id", h.requestHandler.GetRequestDetail)
	requestGroup.POST("/:id/cancel", h.requestHandler.CancelRequest)
	requestGroup.POST("/:id/accept", h.mechanicHandler.AcceptRequest)
	requestGroup.POST("/:id/reject", h.mechanicHandler.RejectRequest)
	requestGroup.POST("/:id/start", h.mechanicHandler.StartTrip)
	requestGroup.POST("/:id/complete", h.mechanicHandler.CompleteJob)

	mechanicGroup := e.Group("/mechanic", jwt)
	mechanicGroup.GET("/requests", h.mechanicHandler.NearbyRequests)
	mechanicGroup.GET("/active-job", h.mechanicHandler.ActiveJob)
}
