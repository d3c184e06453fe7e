package rescue

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/montirku/montirku/services/rescue RescueUC

// RescueUC owns the service request lifecycle and the proximity matcher.
// Every operation takes the authenticated actor's id; role and ownership are
// re-checked against the store, never trusted from the transport layer.
type RescueUC interface {
	// customer operations
	CreateRequest(ctx context.Context, customerID uuid.UUID, payload *models.CreateRequestPayload) (*models.ServiceRequest, error)
	CancelRequest(ctx context.Context, actorID, requestID uuid.UUID) (*models.ServiceRequest, error)
	ListMyRequests(ctx context.Context, customerID uuid.UUID) ([]*models.RequestDetail, error)

	// mechanic operations
	AcceptRequest(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error)
	RejectRequest(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error)
	StartTrip(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error)
	CompleteJob(ctx context.Context, mechanicID, requestID uuid.UUID) (*models.ServiceRequest, error)
	GetActiveJob(ctx context.Context, mechanicID uuid.UUID) (*models.RequestDetail, error)
	FindNearbyRequests(ctx context.Context, mechanicID uuid.UUID) ([]models.NearbyRequest, error)

	// shared
	GetRequestDetail(ctx context.Context, actorID, requestID uuid.UUID) (*models.RequestDetail, error)
}
