package usecase

import (
	"context"
	"time"

	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/rescue"
)

// RescueUC implements the rescue.RescueUC interface
type RescueUC struct {
	cfg         *models.Config
	requestRepo rescue.RequestRepo
	userRepo    rescue.UserRepo
	rescueGW    rescue.RescueGW
}

// NewRescueUC creates a new rescue usecase
func NewRescueUC(
	cfg *models.Config,
	requestRepo rescue.RequestRepo,
	userRepo rescue.UserRepo,
	rescueGW rescue.RescueGW,
) *RescueUC {
	return &RescueUC{
		cfg:         cfg,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		rescueGW:    rescueGW,
	}
}

// publishStatus emits a lifecycle transition event. Publishing is best-effort:
// the transition has already committed, so a broker failure is logged and
// swallowed rather than surfaced as an operation failure.
func (uc *RescueUC) publishStatus(ctx context.Context, req *models.ServiceRequest) {
	event := &models.RequestStatusEvent{
		RequestID:  req.ID,
		CustomerID: req.CustomerID,
		MechanicID: req.MechanicID,
		Status:     req.Status,
		Timestamp:  time.Now(),
	}
	if err := uc.rescueGW.PublishRequestStatus(ctx, event); err != nil {
		logger.Warn("Failed to publish request status event",
			logger.String("request_id", req.ID.String()),
			logger.String("status", string(req.Status)),
			logger.Err(err))
	}
}

// toDetail enriches a request with the counterpart contact summaries. Lookup
// failures degrade to a bare request rather than failing the read.
func (uc *RescueUC) toDetail(ctx context.Context, req *models.ServiceRequest) *models.RequestDetail {
	detail := &models.RequestDetail{ServiceRequest: *req}

	if req.MechanicID != nil {
		mechanic, err := uc.userRepo.GetUserByID(ctx, *req.MechanicID)
		if err != nil {
			logger.Warn("Failed to load mechanic summary",
				logger.String("mechanic_id", req.MechanicID.String()),
				logger.Err(err))
		} else {
			detail.Mechanic = mechanic.Info()
		}
	}

	customer, err := uc.userRepo.GetUserByID(ctx, req.CustomerID)
	if err != nil {
		logger.Warn("Failed to load customer summary",
			logger.String("customer_id", req.CustomerID.String()),
			logger.Err(err))
	} else {
		detail.Customer = customer.Info()
	}

	return detail
}
