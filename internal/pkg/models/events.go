package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestCreatedEvent is published when a customer opens a new request
type RequestCreatedEvent struct {
	RequestID   uuid.UUID   `json:"request_id"`
	CustomerID  uuid.UUID   `json:"customer_id"`
	VehicleType VehicleType `json:"vehicle_type"`
	Location    Location    `json:"location"`
	Timestamp   time.Time   `json:"timestamp"`
}

// RequestStatusEvent is published on every lifecycle transition after creation
type RequestStatusEvent struct {
	RequestID  uuid.UUID     `json:"request_id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	MechanicID *uuid.UUID    `json:"mechanic_id,omitempty"`
	Status     RequestStatus `json:"status"`
	Timestamp  time.Time     `json:"timestamp"`
}
