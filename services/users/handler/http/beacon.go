package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/users"
)

// BeaconHandler handles mechanic availability reports
type BeaconHandler struct {
	userUC users.UserUC
}

// NewBeaconHandler creates a new beacon handler
func NewBeaconHandler(userUC users.UserUC) *BeaconHandler {
	return &BeaconHandler{userUC: userUC}
}

// UpdateAvailability handles POST /mechanic/availability
func (h *BeaconHandler) UpdateAvailability(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BeaconRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return utils.BadRequestResponse(c, "Location not detected")
	}

	user, err := h.userUC.UpdateBeaconStatus(c.Request().Context(), actorID, &req)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to update beacon status",
			logger.String("mechanic_id", actorID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", map[string]interface{}{
		"is_available": user.IsAvailable,
	})
}
