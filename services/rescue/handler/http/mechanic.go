package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/rescue"
)

// MechanicHandler handles mechanic-facing request endpoints
type MechanicHandler struct {
	rescueUC rescue.RescueUC
}

// NewMechanicHandler creates a new mechanic handler
func NewMechanicHandler(rescueUC rescue.RescueUC) *MechanicHandler {
	return &MechanicHandler{rescueUC: rescueUC}
}

// NearbyRequests handles GET /mechanic/requests
func (h *MechanicHandler) NearbyRequests(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	nearby, err := h.rescueUC.FindNearbyRequests(c.Request().Context(), actorID)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to find nearby requests",
			logger.String("mechanic_id", actorID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to find nearby requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby requests retrieved", nearby)
}

// ActiveJob handles GET /mechanic/active-job. The data field is null
// when the mechanic has no active job.
func (h *MechanicHandler) ActiveJob(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	detail, err := h.rescueUC.GetActiveJob(c.Request().Context(), actorID)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to get active job",
			logger.String("mechanic_id", actorID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get active job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active job retrieved", detail)
}

// AcceptRequest handles POST /requests/:id/accept
func (h *MechanicHandler) AcceptRequest(c echo.Context) error {
	return h.transition(c, "accept", h.rescueUC.AcceptRequest, "Request accepted")
}

// RejectRequest handles POST /requests/:id/reject
func (h *MechanicHandler) RejectRequest(c echo.Context) error {
	return h.transition(c, "reject", h.rescueUC.RejectRequest, "Request rejected")
}

// StartTrip handles POST /requests/:id/start
func (h *MechanicHandler) StartTrip(c echo.Context) error {
	return h.transition(c, "start", h.rescueUC.StartTrip, "Trip started")
}

// CompleteJob handles POST /requests/:id/complete
func (h *MechanicHandler) CompleteJob(c echo.Context) error {
	return h.transition(c, "complete", h.rescueUC.CompleteJob, "Job completed")
}

func (h *MechanicHandler) transition(
	c echo.Context,
	action string,
	op func(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error),
	message string,
) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := op(c.Request().Context(), actorID, requestID)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to "+action+" request",
			logger.String("mechanic_id", actorID.String()),
			logger.String("request_id", requestID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to "+action+" request")
	}

	return utils.SuccessResponse(c, http.StatusOK, message, req)
}
