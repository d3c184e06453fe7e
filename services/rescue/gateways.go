package rescue

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/montirku/montirku/services/rescue RescueGW

// RescueGW publishes request lifecycle events. Publishing is best-effort:
// callers log failures and never roll back a committed transition.
type RescueGW interface {
	PublishRequestCreated(ctx context.Context, event *models.RequestCreatedEvent) error
	PublishRequestStatus(ctx context.Context, event *models.RequestStatusEvent) error
}
