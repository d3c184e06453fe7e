package gateway

import (
	"context"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/pkg/nsq"
)

// RescueGW publishes request lifecycle events to NSQ
type RescueGW struct {
	producer *nsq.Producer
}

// NewRescueGW creates a new rescue gateway
func NewRescueGW(producer *nsq.Producer) *RescueGW {
	return &RescueGW{producer: producer}
}

// PublishRequestCreated publishes a request created event
func (g *RescueGW) PublishRequestCreated(ctx context.Context, event *models.RequestCreatedEvent) error {
	return g.producer.Publish(constants.TopicRequestCreated, event)
}

// PublishRequestStatus publishes a request status transition event
func (g *RescueGW) PublishRequestStatus(ctx context.Context, event *models.RequestStatusEvent) error {
	return g.producer.Publish(constants.TopicRequestStatus, event)
}
