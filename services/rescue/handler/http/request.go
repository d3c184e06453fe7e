package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/middleware"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
	"github.com/montirku/montirku/services/rescue"
)

// RequestHandler handles customer-facing request endpoints
type RequestHandler struct {
	rescueUC rescue.RescueUC
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(rescueUC rescue.RescueUC) *RequestHandler {
	return &RequestHandler{rescueUC: rescueUC}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var payload models.CreateRequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if msg, ok := validateCreatePayload(&payload); !ok {
		return utils.BadRequestResponse(c, msg)
	}

	req, err := h.rescueUC.CreateRequest(c.Request().Context(), actorID, &payload)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to create request",
			logger.String("customer_id", actorID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create request")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Request created", req)
}

// ListMyRequests handles GET /requests/mine
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	details, err := h.rescueUC.ListMyRequests(c.Request().Context(), actorID)
	if err != nil {
		logger.Error("Failed to list requests",
			logger.String("customer_id", actorID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Requests retrieved", details)
}

// GetRequestDetail handles GET /requests/:id
func (h *RequestHandler) GetRequestDetail(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	detail, err := h.rescueUC.GetRequestDetail(c.Request().Context(), actorID, requestID)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to get request detail",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Request retrieved", detail)
}

// CancelRequest handles POST /requests/:id/cancel
func (h *RequestHandler) CancelRequest(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := h.rescueUC.CancelRequest(c.Request().Context(), actorID, requestID)
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUnknown {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to cancel request",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to cancel request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", req)
}

func validateCreatePayload(payload *models.CreateRequestPayload) (string, bool) {
	payload.VehicleType = strings.ToLower(strings.TrimSpace(payload.VehicleType))
	if !models.VehicleType(payload.VehicleType).Valid() {
		return "Vehicle type must be car, bike, or truck", false
	}

	payload.ProblemDesc = strings.TrimSpace(payload.ProblemDesc)
	if len(payload.ProblemDesc) < 5 || len(payload.ProblemDesc) > 500 {
		return "Problem description must be between 5 and 500 characters", false
	}

	if !utils.ValidateCoordinates(payload.Lat, payload.Lng) {
		return "Location not detected", false
	}

	return "", true
}
