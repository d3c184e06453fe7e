package rescue

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/montirku/montirku/services/rescue RequestRepo,UserRepo

// RequestRepo is the persistence interface for service requests. Transition
// methods are compare-and-set updates: the WHERE clause carries the expected
// current status (and assigned mechanic where relevant) and zero affected
// rows means the caller lost a race, reported as a Conflict domain error.
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.ServiceRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error)
	ListRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.ServiceRequest, error)

	// ListPendingNear returns Pending requests around a location. The radius
	// bounds the candidate lookup; the caller applies the authoritative
	// distance filter.
	ListPendingNear(ctx context.Context, location models.Location, radiusKm float64) ([]*models.ServiceRequest, error)

	// AcceptRequest atomically assigns a Pending request to a mechanic and
	// marks the mechanic unavailable. Exactly one concurrent caller wins.
	AcceptRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error

	// CancelRequest moves a Pending request to Cancelled.
	CancelRequest(ctx context.Context, requestID uuid.UUID) error

	// RejectRequest moves a Pending request to Rejected and marks the
	// rejecting mechanic available again.
	RejectRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error

	// StartRequest moves an Accepted request to En Route for its assigned
	// mechanic.
	StartRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error

	// CompleteRequest moves an Accepted or En Route request to Completed for
	// its assigned mechanic and marks the mechanic available again.
	CompleteRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error

	// GetActiveRequestByMechanic returns the mechanic's Accepted or En Route
	// request, or nil when there is none.
	GetActiveRequestByMechanic(ctx context.Context, mechanicID uuid.UUID) (*models.ServiceRequest, error)
}

// UserRepo is the slice of the user store the lifecycle manager needs.
// Satisfied by the users service repository.
type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
