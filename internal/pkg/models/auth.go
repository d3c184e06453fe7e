package models

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse contains the authentication token response
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// BeaconRequest is the payload a mechanic sends to report availability and
// current location. Availability is explicit rather than a blind toggle so
// retried requests are idempotent.
type BeaconRequest struct {
	IsAvailable bool    `json:"is_available"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// CreateRequestPayload is the payload a customer sends to open a request
type CreateRequestPayload struct {
	VehicleType string  `json:"vehicle_type"`
	ProblemDesc string  `json:"problem_desc"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
