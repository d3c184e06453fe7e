package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle status of a service request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusAccepted  RequestStatus = "Accepted"
	RequestStatusEnRoute   RequestStatus = "En Route"
	RequestStatusCompleted RequestStatus = "Completed"
	RequestStatusCancelled RequestStatus = "Cancelled"
	RequestStatusRejected  RequestStatus = "Rejected"
)

// ActiveStatuses are the statuses during which a mechanic is committed to a
// request and therefore unavailable for new work.
var ActiveStatuses = []RequestStatus{RequestStatusAccepted, RequestStatusEnRoute}

// IsTerminal reports whether the status permits no further transitions
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusCancelled, RequestStatusRejected:
		return true
	}
	return false
}

// VehicleType is the kind of stranded vehicle a request is for
type VehicleType string

const (
	VehicleTypeCar   VehicleType = "car"
	VehicleTypeBike  VehicleType = "bike"
	VehicleTypeTruck VehicleType = "truck"
)

// Valid reports whether the vehicle type is one of the supported kinds
func (v VehicleType) Valid() bool {
	return v == VehicleTypeCar || v == VehicleTypeBike || v == VehicleTypeTruck
}

// ServiceRequest represents a roadside assistance request. Rows are never
// deleted; terminal statuses are retained as history.
type ServiceRequest struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	CustomerID  uuid.UUID     `json:"customer_id" db:"customer_id"`
	MechanicID  *uuid.UUID    `json:"mechanic_id,omitempty" db:"mechanic_id"`
	VehicleType VehicleType   `json:"vehicle_type" db:"vehicle_type"`
	ProblemDesc string        `json:"problem_desc" db:"problem_desc"`
	Latitude    float64       `json:"lat" db:"latitude"`
	Longitude   float64       `json:"lng" db:"longitude"`
	Status      RequestStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// Location returns the breakdown location reported at creation
func (r *ServiceRequest) Location() Location {
	return Location{Latitude: r.Latitude, Longitude: r.Longitude}
}

// RequestDetail is a service request enriched with the contact summaries the
// counterpart needs once a request is assigned.
type RequestDetail struct {
	ServiceRequest
	Mechanic *UserInfo `json:"mechanic,omitempty"`
	Customer *UserInfo `json:"customer,omitempty"`
}

// NearbyRequest is a pending request surfaced to a mechanic by the proximity
// matcher, with the great-circle distance from the mechanic attached.
type NearbyRequest struct {
	ServiceRequest
	DistanceKm float64 `json:"distance_km"`
}
