package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
)

// CreateRequest opens a new Pending request owned by the customer. Payload
// fields arrive boundary-validated; only the role is re-checked here.
func (uc *RescueUC) CreateRequest(ctx context.Context, customerID uuid.UUID, payload *models.CreateRequestPayload) (*models.ServiceRequest, error) {
	customer, err := uc.userRepo.GetUserByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Role != models.RoleCustomer {
		return nil, domainerrors.Unauthorized("only customers can create requests")
	}

	req := &models.ServiceRequest{
		CustomerID:  customerID,
		VehicleType: models.VehicleType(payload.VehicleType),
		ProblemDesc: payload.ProblemDesc,
		Latitude:    payload.Lat,
		Longitude:   payload.Lng,
	}

	if err := uc.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	event := &models.RequestCreatedEvent{
		RequestID:   req.ID,
		CustomerID:  req.CustomerID,
		VehicleType: req.VehicleType,
		Location:    req.Location(),
		Timestamp:   time.Now(),
	}
	if err := uc.rescueGW.PublishRequestCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish request created event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	logger.Info("Created service request",
		logger.String("request_id", req.ID.String()),
		logger.String("customer_id", customerID.String()),
		logger.String("vehicle_type", string(req.VehicleType)))

	return req, nil
}

// CancelRequest moves the caller's own Pending request to Cancelled
func (uc *RescueUC) CancelRequest(ctx context.Context, actorID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != actorID {
		return nil, domainerrors.Unauthorized("not authorized to cancel this request")
	}
	if req.Status != models.RequestStatusPending {
		return nil, domainerrors.InvalidState("cannot cancel a request that is already processed")
	}

	if err := uc.requestRepo.CancelRequest(ctx, requestID); err != nil {
		// A transition raced between the read and the write; the request
		// is no longer Pending either way.
		if domainerrors.IsConflict(err) {
			return nil, domainerrors.InvalidState("cannot cancel a request that is already processed")
		}
		return nil, err
	}

	req.Status = models.RequestStatusCancelled
	uc.publishStatus(ctx, req)
	return req, nil
}

// AcceptRequest assigns a Pending request to the calling mechanic. Under
// concurrent attempts exactly one caller wins; the rest observe Conflict.
func (uc *RescueUC) AcceptRequest(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	mechanic, err := uc.userRepo.GetUserByID(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if mechanic.Role != models.RoleMechanic {
		return nil, domainerrors.Unauthorized("only mechanics can accept requests")
	}

	active, err := uc.requestRepo.GetActiveRequestByMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domainerrors.InvalidState("mechanic already has an active job")
	}

	req, err := uc.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		return nil, domainerrors.Conflict("request already taken")
	}

	if err := uc.requestRepo.AcceptRequest(ctx, requestID, mechanicID); err != nil {
		return nil, err
	}

	req.Status = models.RequestStatusAccepted
	req.MechanicID = &mechanicID
	uc.publishStatus(ctx, req)

	logger.Info("Request accepted",
		logger.String("request_id", requestID.String()),
		logger.String("mechanic_id", mechanicID.String()))

	return req, nil
}

// RejectRequest moves a Pending request to Rejected and frees the caller
func (uc *RescueUC) RejectRequest(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	mechanic, err := uc.userRepo.GetUserByID(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if mechanic.Role != models.RoleMechanic {
		return nil, domainerrors.Unauthorized("only mechanics can reject requests")
	}

	req, err := uc.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		return nil, domainerrors.InvalidState("cannot reject a request that is already processed")
	}

	if err := uc.requestRepo.RejectRequest(ctx, requestID, mechanicID); err != nil {
		if domainerrors.IsConflict(err) {
			return nil, domainerrors.InvalidState("cannot reject a request that is already processed")
		}
		return nil, err
	}

	req.Status = models.RequestStatusRejected
	uc.publishStatus(ctx, req)
	return req, nil
}

// StartTrip moves the caller's Accepted request to En Route
func (uc *RescueUC) StartTrip(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.MechanicID == nil || *req.MechanicID != mechanicID {
		return nil, domainerrors.Unauthorized("this job is not assigned to you")
	}
	if req.Status != models.RequestStatusAccepted {
		return nil, domainerrors.InvalidState("cannot start trip from status " + string(req.Status))
	}

	if err := uc.requestRepo.StartRequest(ctx, requestID, mechanicID); err != nil {
		if domainerrors.IsConflict(err) {
			return nil, domainerrors.InvalidState("request is no longer accepted")
		}
		return nil, err
	}

	req.Status = models.RequestStatusEnRoute
	uc.publishStatus(ctx, req)
	return req, nil
}

// CompleteJob moves the caller's active request to Completed and frees the
// caller for new work.
func (uc *RescueUC) CompleteJob(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	req, err := uc.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.MechanicID == nil || *req.MechanicID != mechanicID {
		return nil, domainerrors.Unauthorized("this job is not assigned to you")
	}
	if req.Status != models.RequestStatusAccepted && req.Status != models.RequestStatusEnRoute {
		return nil, domainerrors.InvalidState("cannot complete job from status " + string(req.Status))
	}

	if err := uc.requestRepo.CompleteRequest(ctx, requestID, mechanicID); err != nil {
		if domainerrors.IsConflict(err) {
			return nil, domainerrors.InvalidState("request is no longer active")
		}
		return nil, err
	}

	req.Status = models.RequestStatusCompleted
	uc.publishStatus(ctx, req)

	logger.Info("Job completed",
		logger.String("request_id", requestID.String()),
		logger.String("mechanic_id", mechanicID.String()))

	return req, nil
}

// GetActiveJob returns the mechanic's single Accepted or En Route request,
// or nil when there is none.
func (uc *RescueUC) GetActiveJob(ctx context.Context, mechanicID uuid.UUID) (*models.RequestDetail, error) {
	mechanic, err := uc.userRepo.GetUserByID(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if mechanic.Role != models.RoleMechanic {
		return nil, domainerrors.Unauthorized("only mechanics have active jobs")
	}

	req, err := uc.requestRepo.GetActiveRequestByMechanic(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}

	return uc.toDetail(ctx, req), nil
}

// GetRequestDetail returns a request with contact summaries. Only the owning
// customer and the assigned mechanic may see it.
func (uc *RescueUC) GetRequestDetail(ctx context.Context, actorID, requestID uuid.UUID) (*models.RequestDetail, error) {
	req, err := uc.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	isOwner := req.CustomerID == actorID
	isAssigned := req.MechanicID != nil && *req.MechanicID == actorID
	if !isOwner && !isAssigned {
		return nil, domainerrors.Unauthorized("not authorized to view this request")
	}

	return uc.toDetail(ctx, req), nil
}

// ListMyRequests returns the customer's requests, newest first
func (uc *RescueUC) ListMyRequests(ctx context.Context, customerID uuid.UUID) ([]*models.RequestDetail, error) {
	requests, err := uc.requestRepo.ListRequestsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	details := make([]*models.RequestDetail, 0, len(requests))
	for _, req := range requests {
		details = append(details, uc.toDetail(ctx, req))
	}
	return details, nil
}
